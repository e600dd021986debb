package repository

import (
	"context"
	"cryptodashboard/internal/domain"
	"cryptodashboard/internal/logger"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
)

const defaultCoinCapBaseUrl = "https://api.coincap.io/v2"

// errAssetNotFound marks a 404 from the feed; callers translate it into the
// fallback-pricing path instead of an error.
var errAssetNotFound = errors.New("asset not found")

// CoinCapRepository is the external price feed. GetAsset returns (nil, nil)
// when the feed does not know the asset - that is an expected condition, not
// an error.
type CoinCapRepository interface {
	ListTopAssets(ctx context.Context, limit int) ([]domain.Asset, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	GetAssetHistory(ctx context.Context, id string, interval string) ([]domain.AssetHistoryPoint, error)
}

type coinCapRepositoryHandler struct {
	BaseUrl string
	Client  *http.Client

	// single-asset lookups are cached briefly; the valuation engine asks for
	// the same handful of coins on every refresh tick
	assetCache *cache.Cache

	maxAttempts       int
	initialRetryDelay time.Duration
}

func NewCoinCapRepository(baseUrl string) CoinCapRepository {
	if baseUrl == "" {
		baseUrl = defaultCoinCapBaseUrl
	}
	return &coinCapRepositoryHandler{
		BaseUrl:           baseUrl,
		Client:            &http.Client{Timeout: 10 * time.Second},
		assetCache:        cache.New(30*time.Second, time.Minute),
		maxAttempts:       3,
		initialRetryDelay: time.Second,
	}
}

func (h *coinCapRepositoryHandler) ListTopAssets(ctx context.Context, limit int) ([]domain.Asset, error) {
	if limit <= 0 {
		limit = 100
	}
	responseBytes, err := h.getBytes(ctx, fmt.Sprintf("%s/assets?limit=%d", h.BaseUrl, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list top assets: %w", err)
	}

	response := struct {
		Data []domain.Asset `json:"data"`
	}{}
	if err := json.Unmarshal(responseBytes, &response); err != nil {
		return nil, fmt.Errorf("failed to parse top assets response: %w", err)
	}

	return response.Data, nil
}

func (h *coinCapRepositoryHandler) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	if cached, ok := h.assetCache.Get(id); ok {
		asset := cached.(domain.Asset)
		return &asset, nil
	}

	responseBytes, err := h.getBytes(ctx, fmt.Sprintf("%s/assets/%s", h.BaseUrl, url.PathEscape(id)))
	if errors.Is(err, errAssetNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", id, err)
	}

	response := struct {
		Data *domain.Asset `json:"data"`
	}{}
	if err := json.Unmarshal(responseBytes, &response); err != nil {
		return nil, fmt.Errorf("failed to parse asset response for %s: %w", id, err)
	}
	if response.Data == nil {
		return nil, nil
	}

	h.assetCache.SetDefault(id, *response.Data)

	return response.Data, nil
}

func (h *coinCapRepositoryHandler) GetAssetHistory(ctx context.Context, id string, interval string) ([]domain.AssetHistoryPoint, error) {
	if interval == "" {
		interval = "h1"
	}
	responseBytes, err := h.getBytes(ctx, fmt.Sprintf("%s/assets/%s/history?interval=%s", h.BaseUrl, url.PathEscape(id), url.QueryEscape(interval)))
	if errors.Is(err, errAssetNotFound) {
		return []domain.AssetHistoryPoint{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history for %s: %w", id, err)
	}

	response := struct {
		Data []domain.AssetHistoryPoint `json:"data"`
	}{}
	if err := json.Unmarshal(responseBytes, &response); err != nil {
		return nil, fmt.Errorf("failed to parse history response for %s: %w", id, err)
	}

	return response.Data, nil
}

// getBytes issues the request with bounded retry and exponential backoff on
// rate limits and transient failures. After the attempts are exhausted the
// last error is returned and the caller degrades to fallback pricing.
func (h *coinCapRepositoryHandler) getBytes(ctx context.Context, requestUrl string) ([]byte, error) {
	log := logger.FromContext(ctx)

	delay := h.initialRetryDelay
	var lastErr error
	for attempt := 0; attempt < h.maxAttempts; attempt++ {
		if attempt > 0 {
			log.Warnf("coincap request failed (%s), retrying in %s", lastErr.Error(), delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		response, err := h.Client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		responseBytes, err := io.ReadAll(response.Body)
		response.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
			continue
		}

		switch {
		case response.StatusCode == http.StatusOK:
			return responseBytes, nil
		case response.StatusCode == http.StatusNotFound:
			return nil, errAssetNotFound
		case response.StatusCode == http.StatusTooManyRequests || response.StatusCode >= 500:
			lastErr = fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		default:
			return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		}
	}

	return nil, lastErr
}
