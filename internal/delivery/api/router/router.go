// Package router wires the API handlers to their routes.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	AddressHandler      *handler.AddressHandler
	DeviceHandler       *handler.DeviceHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	CouponHandler       *handler.CouponHandler
	OrderHandler        *handler.OrderHandler
	PreOrderHandler     *handler.PreOrderHandler
	EngagementHandler   *handler.EngagementHandler
	NotificationHandler *handler.NotificationHandler
	ContentHandler      *handler.ContentHandler
	MetricsHandler      *handler.MetricsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	addressHandler      *handler.AddressHandler
	deviceHandler       *handler.DeviceHandler
	catalogHandler      *handler.CatalogHandler
	cartHandler         *handler.CartHandler
	couponHandler       *handler.CouponHandler
	orderHandler        *handler.OrderHandler
	preOrderHandler     *handler.PreOrderHandler
	engagementHandler   *handler.EngagementHandler
	notificationHandler *handler.NotificationHandler
	contentHandler      *handler.ContentHandler
	metricsHandler      *handler.MetricsHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		addressHandler:      params.AddressHandler,
		deviceHandler:       params.DeviceHandler,
		catalogHandler:      params.CatalogHandler,
		cartHandler:         params.CartHandler,
		couponHandler:       params.CouponHandler,
		orderHandler:        params.OrderHandler,
		preOrderHandler:     params.PreOrderHandler,
		engagementHandler:   params.EngagementHandler,
		notificationHandler: params.NotificationHandler,
		contentHandler:      params.ContentHandler,
		metricsHandler:      params.MetricsHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/buyer", r.accountHandler.RegisterBuyer)
		authGroup.POST("/register/seller", r.accountHandler.RegisterSeller)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	apiV1 := e.Group("/api/v1")
	r.registerPublicRoutes(apiV1)
	r.registerBuyerRoutes(apiV1)
	r.registerSellerRoutes(apiV1)
}

// registerPublicRoutes exposes the catalog and content without authentication.
func (r *router) registerPublicRoutes(apiV1 *echo.Group) {
	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.catalogHandler.ListCategories)
		categoriesGroup.GET("/:id", r.catalogHandler.GetCategory)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/popular", r.engagementHandler.PopularProducts)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.GET("/:id/reviews", r.engagementHandler.ListProductReviews)
		productsGroup.GET("/:id/rating", r.engagementHandler.ProductRating)
	}

	sellersGroup := apiV1.Group("/sellers")
	{
		sellersGroup.GET("/:id/rating", r.engagementHandler.SellerRating)
	}

	blogsGroup := apiV1.Group("/blogs")
	{
		blogsGroup.GET("", r.contentHandler.ListBlogs)
		blogsGroup.GET("/:id", r.contentHandler.GetBlog)
	}

	eventsGroup := apiV1.Group("/events")
	{
		eventsGroup.GET("", r.contentHandler.ListUpcomingEvents)
		eventsGroup.GET("/:id", r.contentHandler.GetEvent)
	}
}

// registerBuyerRoutes exposes the routes of any authenticated user.
func (r *router) registerBuyerRoutes(apiV1 *echo.Group) {
	authenticate := r.authMiddleware.Authenticate

	meGroup := apiV1.Group("/me", authenticate)
	{
		meGroup.GET("", r.accountHandler.GetProfile)
		meGroup.PATCH("", r.accountHandler.UpdateProfile)
		meGroup.DELETE("", r.accountHandler.DeactivateAccount)
		meGroup.GET("/sessions", r.accountHandler.ActiveSessions)
		meGroup.DELETE("/sessions", r.accountHandler.RevokeSessions)
		meGroup.DELETE("/sessions/:id", r.accountHandler.RevokeSession)
	}

	addressesGroup := apiV1.Group("/addresses", authenticate)
	{
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressesGroup.POST("/:id/primary", r.addressHandler.SetPrimaryAddress)
	}

	devicesGroup := apiV1.Group("/devices", authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	cartGroup := apiV1.Group("/cart", authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.GET("/total", r.cartHandler.CartTotal)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	couponsGroup := apiV1.Group("/coupons", authenticate)
	{
		couponsGroup.POST("/validate", r.couponHandler.ValidateCoupon)
		couponsGroup.POST("/apply", r.couponHandler.ApplyCoupon)
	}

	ordersGroup := apiV1.Group("/orders", authenticate)
	{
		ordersGroup.POST("/checkout", r.orderHandler.Checkout)
		ordersGroup.GET("", r.orderHandler.ListMyOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.OrderQRCode)
	}

	preOrdersGroup := apiV1.Group("/preorders", authenticate)
	{
		preOrdersGroup.POST("", r.preOrderHandler.CreatePreOrder)
		preOrdersGroup.GET("", r.preOrderHandler.ListMyPreOrders)
		preOrdersGroup.GET("/summary", r.preOrderHandler.PreOrderSummary)
		preOrdersGroup.GET("/:id", r.preOrderHandler.GetPreOrder)
		preOrdersGroup.POST("/:id/cancel", r.preOrderHandler.CancelPreOrder)
	}

	reviewsGroup := apiV1.Group("/reviews", authenticate)
	{
		reviewsGroup.POST("", r.engagementHandler.CreateReview)
		reviewsGroup.DELETE("/:id", r.engagementHandler.DeleteReview)
	}

	favoritesGroup := apiV1.Group("/favorites", authenticate)
	{
		favoritesGroup.POST("", r.engagementHandler.AddFavorite)
		favoritesGroup.GET("", r.engagementHandler.ListFavorites)
		favoritesGroup.DELETE("/:productId", r.engagementHandler.RemoveFavorite)
		favoritesGroup.PUT("/:productId/stock-alert", r.engagementHandler.SetStockAlert)
	}

	notificationsGroup := apiV1.Group("/notifications", authenticate)
	{
		notificationsGroup.GET("", r.notificationHandler.ListMine)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}
}

// registerSellerRoutes exposes the routes that require the seller role.
func (r *router) registerSellerRoutes(apiV1 *echo.Group) {
	sellerGroup := apiV1.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)                   // First, check if logged in
	sellerGroup.Use(r.authMiddleware.RequireRole(entity.RoleSeller)) // Then, check for the role

	categoriesGroup := sellerGroup.Group("/categories")
	{
		categoriesGroup.POST("", r.catalogHandler.CreateCategory)
		categoriesGroup.PUT("/:id", r.catalogHandler.UpdateCategory)
		categoriesGroup.DELETE("/:id", r.catalogHandler.DeleteCategory)
	}

	productsGroup := sellerGroup.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListMyProducts)
		productsGroup.POST("", r.catalogHandler.CreateProduct)
		productsGroup.PATCH("/:id", r.catalogHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.catalogHandler.DeactivateProduct)
		productsGroup.POST("/:id/restock", r.catalogHandler.Restock)
		productsGroup.POST("/:id/image", r.catalogHandler.UploadProductImage)
	}

	couponsGroup := sellerGroup.Group("/coupons")
	{
		couponsGroup.POST("", r.couponHandler.CreateCoupon)
		couponsGroup.GET("", r.couponHandler.ListCoupons)
		couponsGroup.GET("/expiring", r.couponHandler.ExpiringCoupons)
		couponsGroup.GET("/stats", r.couponHandler.CouponStats)
		couponsGroup.GET("/most-used", r.couponHandler.MostUsedCoupons)
		couponsGroup.GET("/:id", r.couponHandler.GetCoupon)
		couponsGroup.PATCH("/:id", r.couponHandler.UpdateCoupon)
		couponsGroup.POST("/:id/deactivate", r.couponHandler.DeactivateCoupon)
		couponsGroup.DELETE("/:id", r.couponHandler.DeleteCoupon)
	}

	ordersGroup := sellerGroup.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListSellerOrders)
		ordersGroup.GET("/recent", r.orderHandler.RecentOrders)
		ordersGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	preOrdersGroup := sellerGroup.Group("/preorders")
	{
		preOrdersGroup.GET("", r.preOrderHandler.ListSellerPreOrders)
		preOrdersGroup.PATCH("/:id/status", r.preOrderHandler.UpdatePreOrderStatus)
	}

	notificationsGroup := sellerGroup.Group("/notifications")
	{
		notificationsGroup.POST("/send", r.notificationHandler.SendNotification)
		notificationsGroup.POST("/broadcast", r.notificationHandler.Broadcast)
		notificationsGroup.GET("/sent", r.notificationHandler.SentHistory)
	}

	blogsGroup := sellerGroup.Group("/blogs")
	{
		blogsGroup.POST("", r.contentHandler.CreateBlog)
		blogsGroup.PUT("/:id", r.contentHandler.UpdateBlog)
		blogsGroup.DELETE("/:id", r.contentHandler.DeleteBlog)
		blogsGroup.POST("/:id/publish", r.contentHandler.PublishBlog)
	}

	eventsGroup := sellerGroup.Group("/events")
	{
		eventsGroup.POST("", r.contentHandler.CreateEvent)
		eventsGroup.PUT("/:id", r.contentHandler.UpdateEvent)
		eventsGroup.DELETE("/:id", r.contentHandler.DeleteEvent)
	}

	metricsGroup := sellerGroup.Group("/metrics")
	{
		metricsGroup.GET("/stats", r.metricsHandler.SellerStats)
		metricsGroup.GET("/history", r.metricsHandler.MetricsHistory)
	}
}
