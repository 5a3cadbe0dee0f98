package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusops/ssis/internal/app/controllers"
	"github.com/campusops/ssis/internal/middleware"
	"github.com/campusops/ssis/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	programController *controllers.ProgramController,
	studentController *controllers.StudentController,
	jwtService *auth.JWTService,
	revocations middleware.TokenRevocationChecker,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/google", authController.GoogleLogin)
		authGroup.GET("/google/callback", authController.GoogleCallback)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(middleware.Auth(jwtService, revocations))
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)

		colleges := authenticated.Group("/colleges")
		{
			colleges.GET("", collegeController.ListColleges)
			colleges.GET("/:code", collegeController.GetCollege)
			colleges.POST("", collegeController.CreateCollege)
			colleges.PUT("/:code", collegeController.UpdateCollege)
			colleges.DELETE("/:code", collegeController.DeleteCollege)
		}

		programs := authenticated.Group("/programs")
		{
			programs.GET("", programController.ListPrograms)
			programs.GET("/:code", programController.GetProgram)
			programs.POST("", programController.CreateProgram)
			programs.PUT("/:code", programController.UpdateProgram)
			programs.DELETE("/:code", programController.DeleteProgram)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudent)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
			students.POST("/:id/photo", studentController.UploadPhoto)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
