package routes

import (
	"net/http"
	"time"

	"github.com/Clyding/EmotionCV/controllers"
	"github.com/Clyding/EmotionCV/middleware"
	"github.com/Clyding/EmotionCV/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, analyzeService *services.AnalyzeService) {
	authController := controllers.AuthController{}
	analyzeController := controllers.NewAnalyzeController(analyzeService)
	contactController := controllers.ContactController{}
	sessionController := controllers.SessionController{}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"service":   "EmotionCV Backend",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		private.POST("/analyze", analyzeController.Analyze)
		private.POST("/emergency-contacts", contactController.AddContact)
		private.GET("/emergency-contacts", contactController.ListContacts)
		private.GET("/sessions", sessionController.GetSessions)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
