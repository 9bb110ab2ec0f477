package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/cart"
	"github.com/pandugalih/kedai-pos/kds"
	"github.com/pandugalih/kedai-pos/services"
	"github.com/pandugalih/kedai-pos/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
	Store    cart.Store
}

func NewPaymentController(db *gorm.DB, store cart.Store) *PaymentController {
	return &PaymentController{Payments: services.NewPaymentService(db), Store: store}
}

// GetPaymentMethods -> daftar metode untuk UI pemilihan pembayaran
func (pc *PaymentController) GetPaymentMethods(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Payment methods", services.ListMethods())
}

// CreatePayment -> melunasi satu order. Setelah sukses, keranjang sesi yang
// membuat order itu dikosongkan (sekali saja; Clear idempotent).
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	type reqBody struct {
		OrderID       uint    `json:"order_id" binding:"required"`
		PaymentMethod string  `json:"payment_method" binding:"required"`
		Amount        float64 `json:"amount" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	trx, settlement, err := pc.Payments.Pay(body.OrderID, body.PaymentMethod, body.Amount, userIDFromContext(c))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	// Pembayaran sukses -> kosongkan keranjang sesi ini
	if key := c.GetHeader(CartSessionHeader); key != "" {
		if sess, err := cart.NewSession(c.Request.Context(), key, pc.Store); err == nil {
			sess.Clear(c.Request.Context())
		} else {
			utils.ErrorLogger.Printf("failed to clear cart %s after payment: %v", key, err)
		}
	}

	kds.BroadcastPaymentSettled(*trx)
	kds.BroadcastStaffNotification(fmt.Sprintf("Order #%d sudah dibayar via %s", trx.OrderID, trx.PaymentMethod))

	utils.RespondJSON(c, http.StatusCreated, "Payment settled", gin.H{
		"transaksi":  trx,
		"settlement": settlement,
	})
}

// GetSettlement -> membuat ulang payload settlement dari transaksi tersimpan.
// Expiry ikut bergeser setiap kali dibaca; itu perilaku simulasi yang disengaja.
func (pc *PaymentController) GetSettlement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("transaksi_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid transaksi id"))
		return
	}

	trx, err := pc.Payments.GetTransaksi(uint(id))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	settlement, err := pc.Payments.SettlementFor(trx)
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Settlement detail", gin.H{
		"transaksi":  trx,
		"settlement": settlement,
	})
}

// GetAllPayments -> riwayat transaksi untuk kasir/owner
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	payments, err := pc.Payments.ListTransaksi()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All payments", payments)
}
