package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"
)

func newTestCoinCapRepository(baseUrl string) *coinCapRepositoryHandler {
	return &coinCapRepositoryHandler{
		BaseUrl:           baseUrl,
		Client:            &http.Client{Timeout: time.Second},
		assetCache:        cache.New(30*time.Second, time.Minute),
		maxAttempts:       3,
		initialRetryDelay: time.Millisecond,
	}
}

func Test_ListTopAssets(t *testing.T) {
	t.Run("parses the data envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/assets", r.URL.Path)
			require.Equal(t, "5", r.URL.Query().Get("limit"))
			w.Write([]byte(`{"data":[{"id":"bitcoin","rank":"1","symbol":"BTC","name":"Bitcoin","priceUsd":"20000.5"}]}`))
		}))
		defer server.Close()

		repo := newTestCoinCapRepository(server.URL)
		assets, err := repo.ListTopAssets(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		require.Equal(t, "bitcoin", assets[0].ID)
		require.Equal(t, "20000.5", assets[0].PriceUsd)
	})

	t.Run("retries rate limits until success", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		repo := newTestCoinCapRepository(server.URL)
		_, err := repo.ListTopAssets(context.Background(), 10)
		require.NoError(t, err)
		require.EqualValues(t, 3, calls.Load())
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		repo := newTestCoinCapRepository(server.URL)
		_, err := repo.ListTopAssets(context.Background(), 10)
		require.Error(t, err)
		require.EqualValues(t, 3, calls.Load())
	})

	t.Run("bad request is not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		repo := newTestCoinCapRepository(server.URL)
		_, err := repo.ListTopAssets(context.Background(), 10)
		require.Error(t, err)
		require.EqualValues(t, 1, calls.Load())
	})
}

func Test_GetAsset(t *testing.T) {
	t.Run("not found maps to nil, nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		repo := newTestCoinCapRepository(server.URL)
		asset, err := repo.GetAsset(context.Background(), "notacoin")
		require.NoError(t, err)
		require.Nil(t, asset)
	})

	t.Run("repeat lookups hit the cache", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{"data":{"id":"bitcoin","symbol":"BTC","priceUsd":"20000"}}`))
		}))
		defer server.Close()

		repo := newTestCoinCapRepository(server.URL)
		for i := 0; i < 3; i++ {
			asset, err := repo.GetAsset(context.Background(), "bitcoin")
			require.NoError(t, err)
			require.NotNil(t, asset)
			require.Equal(t, "bitcoin", asset.ID)
		}
		require.EqualValues(t, 1, calls.Load())
	})
}

func Test_GetAssetHistory(t *testing.T) {
	t.Run("parses history points", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/assets/bitcoin/history", r.URL.Path)
			require.Equal(t, "h1", r.URL.Query().Get("interval"))
			w.Write([]byte(`{"data":[{"priceUsd":"20000.1","time":1700000000000,"date":"2023-11-14T22:13:20.000Z"}]}`))
		}))
		defer server.Close()

		repo := newTestCoinCapRepository(server.URL)
		history, err := repo.GetAssetHistory(context.Background(), "bitcoin", "h1")
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.Equal(t, "20000.1", history[0].PriceUsd)
		require.EqualValues(t, 1700000000000, history[0].Time)
	})

	t.Run("unknown asset yields empty history", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		repo := newTestCoinCapRepository(server.URL)
		history, err := repo.GetAssetHistory(context.Background(), "notacoin", "h1")
		require.NoError(t, err)
		require.Empty(t, history)
	})
}
