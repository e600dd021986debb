package api

import (
	"errors"
	"fmt"

	"cryptodashboard/internal/domain"
	"cryptodashboard/internal/service"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPortfolio(c *gin.Context) {
	snapshot, err := m.RefreshService.Latest()
	if errors.Is(err, service.ErrSnapshotNotReady) {
		// First request may land before the background refresher has
		// finished a cycle. Compute inline rather than turning clients away.
		snapshot, err = m.PortfolioService.Snapshot(c.Request.Context())
	}
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get portfolio: %w", err), c)
		return
	}

	c.JSON(200, portfolioResponseFromSnapshot(snapshot))
}

func portfolioResponseFromSnapshot(snapshot *domain.PortfolioSnapshot) gin.H {
	return gin.H{
		"refreshId":    snapshot.RefreshID,
		"computedAt":   snapshot.ComputedAt,
		"summary":      snapshot.Summary,
		"distribution": snapshot.Distribution,
		"valuations":   snapshot.Valuations,
	}
}
