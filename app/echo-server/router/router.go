package router

import (
	"instruCal/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/logout", handler.Logout, authRequired)

	users.PUT("/:id", handler.UpdateUser, authRequired)
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts, authRequired)
	products.GET("/:id", handler.GetProductByID, authRequired)
}

func SetupBookingRoutes(api *echo.Group, handler *rest.BookingHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	bookings := api.Group("/bookings", authRequired)

	bookings.POST("", handler.CreateBooking)
	bookings.GET("", handler.GetMyBookings)
	bookings.GET("/:id", handler.GetBookingByID)
	bookings.PUT("/:id/status", handler.UpdateBookingStatus, adminOnly)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.GET("", handler.Recommend)
	reco.POST("/interactions", handler.RecordInteraction)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin", authRequired, adminOnly)

	admin.GET("/interactions", handler.GetAllInteractions)
	admin.GET("/interactions/stats", handler.GetStats)
}
