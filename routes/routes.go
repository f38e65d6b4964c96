package routes

import (
	"KidSpace/controllers"
	"KidSpace/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Public routes
	r.POST("/api/auth/register", controllers.Register)
	r.POST("/api/auth/login", controllers.Login)

	// WebSocket для live-доставки сообщений
	r.GET("/ws", middlewares.AuthMiddleware(), controllers.ServeWs)

	// Protected routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/auth/me", controllers.Me)
		api.POST("/devices/register", controllers.RegisterDevice)

		// Каталог пользователей для поиска друзей
		api.GET("/users", controllers.GetUsers)
		api.GET("/users/:id", controllers.GetUserByID)

		// Родительские настройки
		api.GET("/settings/:childId", controllers.GetSettings)
		api.PATCH("/settings/:childId", controllers.UpdateSettings)

		// Контент
		api.GET("/content", controllers.GetContent)
		api.GET("/content/shorts", controllers.GetShorts)
		api.POST("/content", controllers.CreateContent)

		// Друзья и заявки
		api.GET("/friends/:userId", controllers.GetFriends)
		api.GET("/friends/requests/:userId", controllers.GetFriendRequests)
		api.GET("/friends/pending-approval/:parentId", controllers.GetPendingApproval)
		api.POST("/friends/request", controllers.SendFriendRequest)
		api.POST("/friends/approve/:requestId", controllers.ApproveFriendRequest)
		api.POST("/friends/reject/:requestId", controllers.RejectFriendRequest)

		// Сообщения
		api.GET("/messages/:userId/:friendId", controllers.GetMessages)
		api.POST("/messages", controllers.SendMessage)

		// Чат-бот
		api.POST("/chatbot/chat", controllers.Chat)
		api.GET("/chatbot/history", controllers.ChatHistory)

		// Explore
		api.GET("/explore/search", controllers.ExploreSearch)
		api.GET("/explore/categories", controllers.ExploreCategories)

		// Детские аккаунты
		api.GET("/children/:parentId", controllers.GetChildren)
		api.POST("/children/add", controllers.AddChild)
	}
}
