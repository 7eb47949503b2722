package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"handymatch/handlers"
	"handymatch/utils"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Analysis     *handlers.AnalysisHandler
	Directory    *handlers.DirectoryHandler
	Booking      *handlers.BookingHandler
	Professional *handlers.ProfessionalHandler
	View         *handlers.ViewHandler
}

// RegisterAnalysisRoutes registers the image-analysis endpoint.
func RegisterAnalysisRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/analysis")
	{
		api.POST("", hb.Analysis.AnalyzeImageHandler)
	}
}

// RegisterProfessionalRoutes registers directory, sign-up and deletion endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.GET("", hb.Directory.ListProfessionalsHandler)
		api.GET("/:id/contact", hb.Directory.ContactHandler)
		api.POST("", hb.Professional.RegisterHandler)

		api.POST("/deletion", hb.Professional.StartDeletionHandler)
		api.POST("/deletion/:sessionID/confirm", hb.Professional.ConfirmDeletionHandler)
		api.POST("/deletion/:sessionID/cancel", hb.Professional.CancelDeletionHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the hire-and-escrow flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID/hours", hb.Booking.SetHours)
		bookingGroup.POST("/session/:sessionID/confirm-details", hb.Booking.ConfirmDetails)
		bookingGroup.POST("/session/:sessionID/payment", hb.Booking.SubmitPayment)
		bookingGroup.POST("/session/:sessionID/complete", hb.Booking.CompleteService)
		bookingGroup.POST("/session/:sessionID/review", hb.Booking.SubmitReview)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CloseSession)
	}
}

// RegisterViewRoutes registers the navigation-session endpoints.
func RegisterViewRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/view")
	{
		api.POST("/session", hb.View.StartSessionHandler)
		api.GET("/session/:sessionID", hb.View.GetSessionHandler)
		api.PUT("/session/:sessionID/navigate", hb.View.NavigateHandler)
		api.PUT("/session/:sessionID/filter", hb.View.SetFilterHandler)
		api.DELETE("/session/:sessionID/filter", hb.View.ClearFilterHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint serving the latest
// monitor snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm HandyMatch",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAnalysisRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterViewRoutes(r, hb)
	RegisterHealthRoute(r)
}
