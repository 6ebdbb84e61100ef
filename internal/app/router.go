package app

import (
	"pathfinder_backend/docs"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/middleware"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 预测接口对外开放，匿名也可试用
		public.POST("/predict", c.career.Predict)

		// 静态参考数据
		public.GET("/careers/:name", c.career.GetCareerDetail)
		public.GET("/courses", c.career.GetCourses)
		public.GET("/skills", c.career.GetSkills)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)

		// 测评与结果
		authGroup.POST("/assessment/submit", c.career.SubmitAssessment)
		authGroup.GET("/results", c.career.GetLatestResult)
		authGroup.GET("/results/history", c.career.GetResultHistory)
	}

	// 3. 管理员路由
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/careers/reload", c.career.ReloadCatalog)
	}
}
