package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quickbite/quickbite-app/cart"
	"github.com/quickbite/quickbite-app/controllers"
	"github.com/quickbite/quickbite-app/middlewares"
	"github.com/quickbite/quickbite-app/services"
	"github.com/quickbite/quickbite-app/storage"
	"github.com/quickbite/quickbite-app/store"
)

// Deps bundles the explicitly constructed services the routes close over.
// Nothing here is a package-level singleton.
type Deps struct {
	DB           *gorm.DB
	Storage      storage.Backend
	Cart         *cart.Cart
	OrderStore   *store.OrderStore
	OrderService *services.OrderService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(deps.DB, deps.Storage)
	catalogCtrl := controllers.NewCatalogController()
	cartCtrl := controllers.NewCartController(deps.Cart)
	orderCtrl := controllers.NewOrderController(deps.OrderService, deps.OrderStore, deps.Cart, deps.Storage)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Catalog browsing
	r.GET("/restaurants", catalogCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", catalogCtrl.GetRestaurantByID)

	// Session cart
	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.PATCH("/cart/items/:line_id", cartCtrl.UpdateQuantity)
	r.DELETE("/cart/items/:line_id", cartCtrl.RemoveItem)
	r.DELETE("/cart", cartCtrl.ClearCart)

	// Checkout and customer-facing tracking
	r.GET("/checkout/prefill", orderCtrl.CheckoutPrefill)
	r.POST("/checkout", orderCtrl.Checkout)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.GET("/orders/:order_id/invoice", orderCtrl.GetInvoice)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)
	}

	// Staff dashboard
	staff := r.Group("/staff")
	staff.Use(middlewares.AuthMiddleware(), middlewares.RequireStaff())
	{
		staff.GET("/orders", orderCtrl.GetAllOrders)
		staff.GET("/orders/by-status", orderCtrl.GetOrdersByStatus)
		staff.GET("/orders/active", orderCtrl.GetActiveOrders)
		staff.GET("/dashboard", orderCtrl.GetDashboard)
		staff.POST("/orders/:order_id/advance", orderCtrl.AdvanceOrder)
		staff.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
	}

	return r
}
