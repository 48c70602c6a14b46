// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/ryssellou/recruitment-dashboard/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ryssellou/recruitment-dashboard/internal/auth"
	"github.com/ryssellou/recruitment-dashboard/internal/controller"
	"github.com/ryssellou/recruitment-dashboard/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *DashboardServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	sessionCtrl := auth.NewSessionController(s.DB)
	candidateCtrl := controller.NewCandidateController(s.DB)
	reviewCtrl := controller.NewReviewController(s.DB)
	analysisCtrl := controller.NewAnalysisController(s.DB, s.Runner)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		authRoute := api.Group("/auth")
		{
			authRoute.POST("login", sessionCtrl.Login)
			authRoute.POST("logout", sessionCtrl.Logout)
			authRoute.GET("reviewers", sessionCtrl.Reviewers)
			authRoute.GET("me", middleware.RequireAuth(s.DB), sessionCtrl.Me)
		}

		candidates := api.Group("/candidates", middleware.OptionalAuth(s.DB))
		{
			candidates.GET("", candidateCtrl.GetCandidates)
			candidates.GET("/roles", candidateCtrl.GetRoles)
			candidates.GET("/:id", candidateCtrl.GetCandidateByID)
			candidates.POST("/sync", middleware.EnvRateLimitMiddleware(), candidateCtrl.SyncCandidates)
		}

		reviews := api.Group("/reviews", middleware.RequireAuth(s.DB))
		{
			reviews.POST("", reviewCtrl.SubmitReview)
			reviews.GET("/candidate/:candidateId", reviewCtrl.GetReviewsByCandidate)
			reviews.GET("/my", reviewCtrl.GetMyReviews)
		}

		analysisRoute := api.Group("/analysis", middleware.RequireAuth(s.DB))
		{
			analysisRoute.POST("/trigger/:candidateId", middleware.EnvRateLimitMiddleware(), analysisCtrl.TriggerAnalysis)
			analysisRoute.GET("/:candidateId", analysisCtrl.GetAnalysis)
		}

		api.GET("/google/status", controller.GoogleStatus)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (s *DashboardServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
