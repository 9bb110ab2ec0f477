package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/cart"
	"github.com/pandugalih/kedai-pos/models"
	"github.com/pandugalih/kedai-pos/utils"
)

// Header yang membawa key sesi keranjang milik device customer.
const CartSessionHeader = "X-Cart-Session"

type CartController struct {
	DB    *gorm.DB
	Store cart.Store
}

func NewCartController(db *gorm.DB, store cart.Store) *CartController {
	return &CartController{DB: db, Store: store}
}

func (cc *CartController) session(c *gin.Context) (*cart.Session, bool) {
	key := c.GetHeader(CartSessionHeader)
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("%s header is required", CartSessionHeader))
		return nil, false
	}
	sess, err := cart.NewSession(c.Request.Context(), key, cc.Store)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return nil, false
	}
	return sess, true
}

func respondCart(c *gin.Context, message string, snapshot *cart.Cart) {
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"cart":        snapshot,
		"total_price": snapshot.TotalPrice(),
	})
}

// GetCart -> isi keranjang sesi ini
func (cc *CartController) GetCart(c *gin.Context) {
	sess, ok := cc.session(c)
	if !ok {
		return
	}
	respondCart(c, "Cart detail", sess.Cart)
}

// AddItem -> menambahkan menu ke keranjang (increment kalau sudah ada)
func (cc *CartController) AddItem(c *gin.Context) {
	sess, ok := cc.session(c)
	if !ok {
		return
	}

	type reqBody struct {
		MenuID   uint   `json:"menu_id" binding:"required"`
		Quantity int    `json:"quantity"`
		Note     string `json:"note"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	var menu models.Menu
	if err := cc.DB.First(&menu, body.MenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("menu not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sess.AddItem(c.Request.Context(), menu, body.Quantity)
	if body.Note != "" {
		sess.UpdateNote(c.Request.Context(), menu.ID, body.Note)
	}
	respondCart(c, "Item added", sess.Cart)
}

// UpdateQuantity -> set quantity; quantity <= 0 menghapus baris
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	sess, ok := cc.session(c)
	if !ok {
		return
	}

	menuID, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid menu id"))
		return
	}

	type reqBody struct {
		Quantity int `json:"quantity"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess.UpdateQuantity(c.Request.Context(), uint(menuID), body.Quantity)
	respondCart(c, "Cart updated", sess.Cart)
}

// UpdateNote -> catatan per item (no-op kalau item tidak ada)
func (cc *CartController) UpdateNote(c *gin.Context) {
	sess, ok := cc.session(c)
	if !ok {
		return
	}

	menuID, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid menu id"))
		return
	}

	type reqBody struct {
		Note string `json:"note"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess.UpdateNote(c.Request.Context(), uint(menuID), body.Note)
	respondCart(c, "Note updated", sess.Cart)
}

// RemoveItem -> hapus satu baris
func (cc *CartController) RemoveItem(c *gin.Context) {
	sess, ok := cc.session(c)
	if !ok {
		return
	}

	menuID, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid menu id"))
		return
	}

	sess.RemoveItem(c.Request.Context(), uint(menuID))
	respondCart(c, "Item removed", sess.Cart)
}

// SetCustomerName -> nama yang ditampilkan di order take-away
func (cc *CartController) SetCustomerName(c *gin.Context) {
	sess, ok := cc.session(c)
	if !ok {
		return
	}

	type reqBody struct {
		CustomerName string `json:"customer_name"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess.SetCustomerName(c.Request.Context(), body.CustomerName)
	respondCart(c, "Customer name updated", sess.Cart)
}

// ClearCart -> kosongkan keranjang
func (cc *CartController) ClearCart(c *gin.Context) {
	sess, ok := cc.session(c)
	if !ok {
		return
	}
	sess.Clear(c.Request.Context())
	respondCart(c, "Cart cleared", sess.Cart)
}
