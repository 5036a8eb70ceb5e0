package routes

import (
	"github.com/gin-gonic/gin"

	"christmas-gift-api/controllers"
	"christmas-gift-api/middleware"
)

// SetupRoutes wires the /api/v1 surface. The submission and settings
// controllers are built at startup because they share the reference-data
// cache; the remaining handlers are stateless.
func SetupRoutes(
	router *gin.Engine,
	submissions *controllers.SubmissionController,
	settings *controllers.SettingsController,
) {
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Gift API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Users (admin)
			users := protected.Group("/users", middleware.RequireAdmin())
			{
				users.GET("", controllers.GetUsers)
				users.GET("/:id", controllers.GetUser)
				users.POST("", controllers.CreateUser)
				users.PUT("/:id", controllers.UpdateUser)
				users.DELETE("/:id", controllers.DeleteUser)
			}

			// Wish list items
			wishlist := protected.Group("/wishlist")
			{
				wishlist.GET("/user/:userId", controllers.GetUserWishList)
				wishlist.GET("/:id", controllers.GetWishListItem)
				wishlist.POST("", controllers.CreateWishListItem)
				wishlist.PUT("/:id", controllers.UpdateWishListItem)
				wishlist.DELETE("/:id", controllers.DeleteWishListItem)
			}

			// Wish list submissions (approval workflow)
			subs := protected.Group("/submissions")
			{
				subs.GET("", submissions.List)
				subs.GET("/:id", submissions.Get)
				subs.GET("/user/:userId", submissions.ListByUser)
				subs.POST("", submissions.Create)

				// Status changes and deletes are for guardians/admins
				subs.PUT("/:id", middleware.RequireAdmin(), submissions.Update)
				subs.DELETE("/:id", middleware.RequireAdmin(), submissions.Delete)
			}

			// Settings (read-only)
			settingsGroup := protected.Group("/settings")
			{
				settingsGroup.GET("", settings.List)
				settingsGroup.GET("/:name", settings.Get)
			}

			// Hero content
			hero := protected.Group("/hero-contents")
			{
				hero.GET("", controllers.GetHeroContents)
				hero.GET("/:id", controllers.GetHeroContent)
				hero.POST("", middleware.RequireAdmin(), controllers.CreateHeroContent)
				hero.PUT("/:id", middleware.RequireAdmin(), controllers.UpdateHeroContent)
				hero.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteHeroContent)
			}

			// Recommended items
			recommend := protected.Group("/recommend-items")
			{
				recommend.GET("", controllers.GetRecommendItems)
				recommend.GET("/:id", controllers.GetRecommendItem)
				recommend.POST("", middleware.RequireAdmin(), controllers.CreateRecommendItem)
				recommend.PUT("/:id", middleware.RequireAdmin(), controllers.UpdateRecommendItem)
				recommend.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteRecommendItem)
			}
		}
	}
}
