package api

import (
	"cryptodashboard/internal/logger"
	"cryptodashboard/internal/repository"
	"cryptodashboard/internal/service"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                *sql.DB // nil when the ledger is csv-backed
	LedgerRepository  repository.LedgerRepository
	CoinCapRepository repository.CoinCapRepository
	CoinMapping       *service.CoinMappingService
	PortfolioService  service.PortfolioService
	ChatService       service.ChatService
	RefreshService    service.RefreshService

	// when set, portfolio and chat routes require a valid Supabase JWT
	JwtSecret string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to cryptodashboard"})
	})
	router.GET("/assets", m.listAssets)
	router.GET("/assets/:id", m.getAsset)
	router.GET("/assets/:id/history", m.getAssetHistory)

	protected := router.Group("/")
	if m.JwtSecret != "" {
		protected.Use(m.authMiddleware())
	}
	protected.GET("/transactions", m.listTransactions)
	protected.GET("/portfolio", m.getPortfolio)
	protected.POST("/chat", m.chat)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware tags every request with an id and logs the outcome.
// The id is handed to downstream code through the request context.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.New()
	ctx.Set("requestID", requestID.String())

	start := time.Now()
	ctx.Next()

	logger.Info("%s %s -> %d (%dms) requestID=%s",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
		requestID,
	)
}
