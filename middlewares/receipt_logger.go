package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/pandugalih/kedai-pos/utils"
)

func ReceiptLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Sebelum request
		utils.InfoLogger.Printf("Fetching receipt for transaksi ID: %s", c.Param("transaksi_id"))

		c.Next()

		// Setelah request
		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Receipt served for transaksi ID: %s", c.Param("transaksi_id"))
		} else {
			utils.ErrorLogger.Printf("Failed to serve receipt for transaksi ID: %s", c.Param("transaksi_id"))
		}
	}
}
