package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listTransactions(c *gin.Context) {
	transactions, err := m.LedgerRepository.ListTransactions(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list transactions: %w", err), c)
		return
	}

	c.JSON(200, gin.H{
		"data":  transactions,
		"count": len(transactions),
	})
}
