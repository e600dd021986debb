package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultAssetListLimit = 100

func (m ApiHandler) listAssets(c *gin.Context) {
	limit := defaultAssetListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			returnErrorJsonCode(fmt.Errorf("invalid limit %q", raw), c, 400)
			return
		}
		limit = parsed
	}

	assets, err := m.CoinCapRepository.ListTopAssets(c.Request.Context(), limit)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list assets: %w", err), c)
		return
	}

	c.JSON(200, gin.H{"data": assets})
}

func (m ApiHandler) getAsset(c *gin.Context) {
	coinName := c.Param("id")
	feedID := m.CoinMapping.ResolveFeedID(coinName)
	if !m.CoinMapping.HasFeedListing(feedID) {
		returnErrorJsonCode(fmt.Errorf("asset %q has no market feed listing", coinName), c, 404)
		return
	}

	asset, err := m.CoinCapRepository.GetAsset(c.Request.Context(), feedID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get asset %s: %w", feedID, err), c)
		return
	}
	if asset == nil {
		returnErrorJsonCode(fmt.Errorf("asset %q not found", coinName), c, 404)
		return
	}

	c.JSON(200, gin.H{"data": asset})
}

func (m ApiHandler) getAssetHistory(c *gin.Context) {
	coinName := c.Param("id")
	interval := c.DefaultQuery("interval", "h1")

	feedID := m.CoinMapping.ResolveFeedID(coinName)
	if !m.CoinMapping.HasFeedListing(feedID) {
		returnErrorJsonCode(fmt.Errorf("asset %q has no market feed listing", coinName), c, 404)
		return
	}

	history, err := m.CoinCapRepository.GetAssetHistory(c.Request.Context(), feedID, interval)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get history for %s: %w", feedID, err), c)
		return
	}

	c.JSON(200, gin.H{"data": history})
}
