package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/kds"
	"github.com/pandugalih/kedai-pos/services"
	"github.com/pandugalih/kedai-pos/utils"
)

type ReceiptController struct {
	Receipts *services.ReceiptService
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	payments := services.NewPaymentService(db)
	return &ReceiptController{Receipts: services.NewReceiptService(db, payments)}
}

// GetReceipt -> proyeksi struk dari satu transaksi; read-only, aman
// dipanggil berulang untuk tampil/cetak ulang.
func (rc *ReceiptController) GetReceipt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("transaksi_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid transaksi id"))
		return
	}

	receipt, err := rc.Receipts.ByTransaksiID(uint(id))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	kds.BroadcastReceiptRequested(receipt.TransaksiID)
	utils.RespondJSON(c, http.StatusOK, "Receipt detail", receipt)
}
