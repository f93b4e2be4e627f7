package routes

import (
	"net/http"

	"doener-shop/controllers"
	"doener-shop/middleware"
	"doener-shop/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, deps *Dependencies) {
	menuCtrl := &controllers.MenuController{Menu: deps.Menu}
	cartCtrl := &controllers.CartController{Carts: deps.Carts}
	configCtrl := &controllers.ConfiguratorController{Configurator: deps.Configurator}
	checkoutCtrl := &controllers.CheckoutController{Orders: deps.Orders, Zones: deps.Zones, Hours: deps.Hours}
	authCtrl := &controllers.AuthController{Auth: deps.AdminAuth}
	orderCtrl := &controllers.OrderController{History: deps.History, Location: deps.Location}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/search", menuCtrl.Search)
	router.GET("/menu/:id", menuCtrl.GetItem)
	router.GET("/opening-hours", checkoutCtrl.GetOpeningHours)
	router.GET("/checkout/zones", checkoutCtrl.GetZones)
	router.GET("/checkout/timeslots", checkoutCtrl.GetTimeSlots)

	shop := router.Group("/")
	shop.Use(middleware.CartSession())
	{
		shop.GET("/cart", cartCtrl.GetCart)
		shop.DELETE("/cart", cartCtrl.ClearCart)
		shop.POST("/cart/items", cartCtrl.AddItem)
		shop.PATCH("/cart/items", cartCtrl.UpdateItem)
		shop.DELETE("/cart/items", cartCtrl.RemoveItem)

		shop.POST("/configurator", configCtrl.Open)
		shop.GET("/configurator/:id", configCtrl.Get)
		shop.POST("/configurator/:id/events", configCtrl.ApplyEvent)
		shop.DELETE("/configurator/:id", configCtrl.Close)

		shop.POST("/checkout/quote", checkoutCtrl.Quote)
		shop.POST("/orders", checkoutCtrl.CreateOrder)
	}

	router.POST("/admin/login", authCtrl.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Tokens), middleware.RequireRole(utils.RoleAdmin))
	{
		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}
}

// NewRouter builds the engine with the shared middleware stack.
func NewRouter(deps *Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORSMiddleware(deps.OriginURL))
	SetupRoutes(router, deps)
	return router
}
