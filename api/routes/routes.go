package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minsu-dev/brandsite-backend/internal/config"
	"github.com/minsu-dev/brandsite-backend/internal/handlers"
	"github.com/minsu-dev/brandsite-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers the router needs.
type HandlerDependencies struct {
	AuthHandler        *handlers.AuthHandler
	PostHandler        *handlers.PostHandler
	ProductHandler     *handlers.ProductHandler
	EventHandler       *handlers.EventHandler
	ReservationHandler *handlers.ReservationHandler
	FAQHandler         *handlers.FAQHandler
	SettingsHandler    *handlers.SettingsHandler
}

// SetupRouter assembles the gin engine: public site routes plus the
// JWT-protected admin surface.
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", deps.AuthHandler.Login)

		public.GET("/posts", deps.PostHandler.ListPosts)
		public.GET("/posts/:id", deps.PostHandler.GetPost)

		public.GET("/products", deps.ProductHandler.ListProducts)
		public.GET("/products/:id", deps.ProductHandler.GetProduct)

		public.GET("/events", deps.EventHandler.ListEvents)
		public.GET("/events/:id", deps.EventHandler.GetEvent)
		public.GET("/events/:id/status", deps.EventHandler.GetEventStatus)
		public.POST("/events/:id/draw", deps.EventHandler.Draw)

		public.GET("/reservations/availability", deps.ReservationHandler.GetAvailability)
		public.POST("/reservations", deps.ReservationHandler.CreateReservation)
		public.POST("/reservations/:id/cancel", deps.ReservationHandler.CancelReservation)

		public.GET("/faqs", deps.FAQHandler.ListFAQs)
		public.GET("/faqs/:id", deps.FAQHandler.GetFAQ)

		public.GET("/settings", deps.SettingsHandler.GetSettings)
	}

	// Admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	{
		posts := admin.Group("/posts")
		{
			posts.GET("", deps.PostHandler.ListAllPosts)
			posts.POST("", deps.PostHandler.CreatePost)
			posts.PUT("/:id", deps.PostHandler.UpdatePost)
			posts.DELETE("/:id", deps.PostHandler.DeletePost)
		}

		products := admin.Group("/products")
		{
			products.POST("", deps.ProductHandler.CreateProduct)
			products.PUT("/:id", deps.ProductHandler.UpdateProduct)
			products.DELETE("/:id", deps.ProductHandler.DeleteProduct)
		}

		events := admin.Group("/events")
		{
			events.GET("", deps.EventHandler.ListAllEvents)
			events.POST("", deps.EventHandler.CreateEvent)
			events.PUT("/:id", deps.EventHandler.UpdateEvent)
			events.DELETE("/:id", deps.EventHandler.DeleteEvent)
		}

		reservations := admin.Group("/reservations")
		{
			reservations.GET("", deps.ReservationHandler.ListReservations)
			reservations.GET("/export", deps.ReservationHandler.ExportReservationsCSV)
			reservations.GET("/:id", deps.ReservationHandler.GetReservation)
			reservations.PATCH("/:id/status", deps.ReservationHandler.UpdateReservationStatus)
			reservations.DELETE("/:id", deps.ReservationHandler.DeleteReservation)
		}

		faqs := admin.Group("/faqs")
		{
			faqs.POST("", deps.FAQHandler.CreateFAQ)
			faqs.PUT("/:id", deps.FAQHandler.UpdateFAQ)
			faqs.DELETE("/:id", deps.FAQHandler.DeleteFAQ)
		}

		admin.PUT("/settings", deps.SettingsHandler.UpdateSettings)
	}

	return router
}
