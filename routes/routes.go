package routes

import (
	"github.com/gin-gonic/gin"

	"tahfidz/auth"
	"tahfidz/handlers"
)

// SetupRoutes configures the API routes. The workflow endpoints are open, as
// the existing client expects; only the session routes check a token.
func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/login", handlers.LoginHandler)
		api.GET("/teachers", handlers.GetTeachersHandler)
		api.GET("/surahs", handlers.GetSurahsHandler)

		// Student routes
		api.POST("/requests", handlers.CreateRequestHandler)
		api.GET("/history/:studentId", handlers.GetStudentHistoryHandler)

		// Teacher routes
		api.GET("/requests/pending/:teacherId", handlers.GetPendingRequestsHandler)
		api.POST("/grades", handlers.SubmitGradeHandler)

		// Shared ledger view
		api.GET("/leger", handlers.GetLegerHandler)
	}

	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware())
	protected.GET("/me", handlers.MeHandler)
}
