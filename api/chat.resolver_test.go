package api

import (
	"cryptodashboard/internal/domain"
	mock_service "cryptodashboard/internal/service/mocks"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postChat(t *testing.T, handler ApiHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	router := gin.New()
	router.POST("/chat", handler.chat)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	return recorder
}

func Test_chat(t *testing.T) {
	t.Run("empty message is rejected", func(t *testing.T) {
		recorder := postChat(t, ApiHandler{}, `{"message":"   "}`)
		require.Equal(t, 400, recorder.Code)
	})

	t.Run("oversized message is rejected", func(t *testing.T) {
		body := `{"message":"` + strings.Repeat("a", maxChatMessageLength+1) + `"}`
		recorder := postChat(t, ApiHandler{}, body)
		require.Equal(t, 400, recorder.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		recorder := postChat(t, ApiHandler{}, `{"message":`)
		require.Equal(t, 400, recorder.Code)
	})

	t.Run("valid message reaches the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chatService := mock_service.NewMockChatService(ctrl)
		chatService.EXPECT().
			SendMessage(gomock.Any(), "how is BTC doing?", gomock.Any()).
			Return(&domain.ChatResponse{Message: "fine"}, nil)

		handler := ApiHandler{ChatService: chatService}
		recorder := postChat(t, handler, `{"message":"how is BTC doing?"}`)
		require.Equal(t, 200, recorder.Code)
		require.Contains(t, recorder.Body.String(), "fine")
	})
}
