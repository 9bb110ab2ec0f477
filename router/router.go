package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/cart"
	"github.com/pandugalih/kedai-pos/controllers"
	"github.com/pandugalih/kedai-pos/middlewares"
)

func SetupRouter(db *gorm.DB, store cart.Store) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db, store)
	orderCtrl := controllers.NewOrderController(db, store)
	paymentCtrl := controllers.NewPaymentController(db, store)
	receiptCtrl := controllers.NewReceiptController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// -- CUSTOMER (tanpa auth; token opsional supaya order tercatat user id) --
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.GET("/payment-methods", paymentCtrl.GetPaymentMethods)

	// Keranjang per sesi device (header X-Cart-Session)
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartCtrl.GetCart)
		cartGroup.DELETE("", cartCtrl.ClearCart)
		cartGroup.POST("/items", cartCtrl.AddItem)
		cartGroup.PATCH("/items/:menu_id", cartCtrl.UpdateQuantity)
		cartGroup.PATCH("/items/:menu_id/note", cartCtrl.UpdateNote)
		cartGroup.DELETE("/items/:menu_id", cartCtrl.RemoveItem)
		cartGroup.PATCH("/customer-name", cartCtrl.SetCustomerName)
	}

	// Order & pembayaran customer
	public := r.Group("/")
	public.Use(middlewares.OptionalAuthMiddleware())
	{
		public.POST("/orders", orderCtrl.CreateOrder)
		public.GET("/orders/:order_id", orderCtrl.GetOrderByID)

		// Rate limiter ketat untuk endpoint pembayaran
		payments := public.Group("/payments")
		payments.Use(middlewares.NewStrictRateLimiter())
		{
			payments.POST("", paymentCtrl.CreatePayment)
		}
		public.GET("/payments/:transaksi_id/settlement", paymentCtrl.GetSettlement)

		receipts := public.Group("/receipts")
		receipts.Use(middlewares.ReceiptLoggerMiddleware())
		{
			receipts.GET("/:transaksi_id", receiptCtrl.GetReceipt)
		}
	}

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	staff := r.Group("/admin")
	staff.Use(middlewares.AuthMiddleware())

	staff.GET("/orders", middlewares.RequireRoles("waiter", "cashier", "owner"), orderCtrl.GetAllOrders)
	staff.PATCH("/orders/:order_id/status", middlewares.RequireRoles("waiter", "cashier"), orderCtrl.UpdateOrderStatus)
	staff.PATCH("/order-items/:item_id/status", middlewares.RequireRoles("waiter", "cashier"), orderCtrl.UpdateItemStatus)
	staff.GET("/payments", middlewares.RequireRoles("cashier", "owner"), paymentCtrl.GetAllPayments)

	// WebSocket untuk staff memantau order & pembayaran realtime
	wsGroup := r.Group("/kds")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/ws", controllers.KDSHandler)
	}

	return r
}
