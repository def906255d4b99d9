// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"drogo/internal/delivery/http/middleware"
	"drogo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	LocationHandler *handler.LocationHandler
	OrderHandler    *handler.OrderHandler
	AdminHandler    *handler.AdminHandler
	WaitlistHandler *handler.WaitlistHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signin/email", r.params.SessionHandler.SignInWithEmail)
		authGroup.POST("/signin/google", r.params.SessionHandler.SignInWithGoogle)
	}

	// Session routes that require authentication
	sessionGroup := e.Group("/auth")
	sessionGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		sessionGroup.POST("/signout", r.params.SessionHandler.SignOut)
		sessionGroup.GET("/me", r.params.SessionHandler.Me)
		sessionGroup.POST("/device-token", r.params.SessionHandler.RegisterDeviceToken)
	}

	// Public catalog routes
	e.GET("/products", r.params.CatalogHandler.ListProducts)
	e.GET("/products/:productID", r.params.CatalogHandler.GetProduct)
	e.GET("/categories", r.params.CatalogHandler.ListCategories)

	// Public delivery location routes
	deliveryGroup := e.Group("/delivery")
	{
		deliveryGroup.GET("/spots", r.params.LocationHandler.ListSpots)
		deliveryGroup.GET("/spots/nearest", r.params.LocationHandler.NearestSpot)
		deliveryGroup.GET("/addresses", r.params.LocationHandler.SuggestAddresses)
	}

	// Delivery selection routes that require authentication
	selectionGroup := e.Group("/delivery/selection")
	selectionGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		selectionGroup.GET("", r.params.LocationHandler.GetSelection)
		selectionGroup.PUT("", r.params.LocationHandler.UpdateSelection)
		selectionGroup.DELETE("", r.params.LocationHandler.ClearSelection)
	}

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.POST("/items/:productID/increase", r.params.CartHandler.IncreaseItem)
		cartGroup.POST("/items/:productID/decrease", r.params.CartHandler.DecreaseItem)
		cartGroup.DELETE("/items/:productID", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.ClearCart)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.PlaceOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/current", r.params.OrderHandler.CurrentOrder)
		orderGroup.GET("/:orderID", r.params.OrderHandler.GetOrder)
		orderGroup.GET("/:orderID/qr", r.params.OrderHandler.PickupQR)
		orderGroup.POST("/:orderID/cancel", r.params.OrderHandler.CancelOrder)
	}

	// Public waitlist route; visitors outside the service area are not
	// signed in.
	e.POST("/waitlist", r.params.WaitlistHandler.Join)

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/orders", r.params.AdminHandler.ListAllOrders)
		adminGroup.PATCH("/orders/:orderID/status", r.params.OrderHandler.UpdateStatus)
		adminGroup.POST("/orders/pickup", r.params.OrderHandler.ConfirmPickup)
		adminGroup.GET("/analytics", r.params.AdminHandler.GetAnalytics)
		adminGroup.GET("/waitlist", r.params.AdminHandler.ListWaitlist)
		adminGroup.PATCH("/products/:productID/stock", r.params.CatalogHandler.SetProductStock)
	}
}
