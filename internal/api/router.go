package api

import (
	"github.com/gin-gonic/gin"
	"github.com/johnzhangfit/verttracker/internal/api/controller"
	"github.com/johnzhangfit/verttracker/internal/api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/johnzhangfit/verttracker/docs"
)

// RegisterRoutes wires every endpoint. Register and login are public;
// everything else sits behind the JWT middleware.
func RegisterRoutes(r *gin.Engine, authCtrl *controller.AuthController, jumpCtrl *controller.JumpController) {
	r.Use(middleware.Cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api")
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
	}

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuth())
	{
		protected.POST("/record-jump", jumpCtrl.RecordJump)
		protected.GET("/jumps", jumpCtrl.ListJumps)
		protected.GET("/plot", jumpCtrl.Plot)
		protected.GET("/summary", jumpCtrl.Summary)
	}
}
