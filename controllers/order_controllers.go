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

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
	Store  cart.Store
}

func NewOrderController(db *gorm.DB, store cart.Store) *OrderController {
	return &OrderController{DB: db, Orders: services.NewOrderService(db), Store: store}
}

// CreateOrder -> submit keranjang sesi ini menjadi order berstatus pending.
// Keranjang tidak dikosongkan di sini; baru setelah pembayaran sukses.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	key := c.GetHeader(CartSessionHeader)
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("%s header is required", CartSessionHeader))
		return
	}

	type reqBody struct {
		TableNumber string `json:"table_number" binding:"required"`
		Note        string `json:"note"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess, err := cart.NewSession(c.Request.Context(), key, oc.Store)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order, err := oc.Orders.Submit(sess.Cart, body.TableNumber, userIDFromContext(c), body.Note)
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	kds.BroadcastOrderUpdate(*order)
	kds.BroadcastStaffNotification(fmt.Sprintf("Order #%d masuk dari meja %s", order.ID, order.TableNumber))

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> detail 1 order beserta item dan menunya
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid order id"))
		return
	}

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders -> list order untuk staff, bisa difilter status
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(c.Query("status"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus -> staff memindahkan status order
// (pending -> processing -> completed, atau pending -> cancelled)
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid order id"))
		return
	}

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(uint(id), body.Status)
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	kds.BroadcastOrderUpdate(*order)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// UpdateItemStatus -> progress dapur satu item
// (pending -> preparing -> ready)
func (oc *OrderController) UpdateItemStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid item id"))
		return
	}

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := oc.Orders.UpdateItemStatus(uint(id), body.Status)
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	kds.BroadcastOrderItemUpdate(*item)
	utils.RespondJSON(c, http.StatusOK, "Item status updated", item)
}
