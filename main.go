package main

import (
	"KidSpace/config"
	"KidSpace/controllers"
	"KidSpace/interfaces"
	"KidSpace/repositories/impl"
	"KidSpace/routes"
	"KidSpace/services"
	"KidSpace/websocket"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.InitLogger()
	config.InitDatabase()
	config.InitFirebase()

	// Initialize repositories
	userRepo := impl.NewUserRepository(config.DB)
	settingsRepo := impl.NewSettingsRepository(config.DB)
	contentRepo := impl.NewContentRepository(config.DB)
	friendRepo := impl.NewFriendRepository(config.DB)
	messageRepo := impl.NewMessageRepository(config.DB)
	chatbotRepo := impl.NewChatbotRepository(config.DB)

	// WebSocket hub для live-доставки сообщений
	hub := websocket.NewHub()
	go hub.Run()

	// Push-уведомления включаются только при наличии FCM клиента
	var notifier interfaces.Notifier
	if config.FCMClient != nil {
		notifier = services.NewNotificationService(config.FCMClient)
	}

	// Initialize services
	authService := services.NewAuthService(userRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	contentService := services.NewContentService(contentRepo)
	friendService := services.NewFriendService(friendRepo, userRepo, notifier)
	messageService := services.NewMessageService(messageRepo, friendRepo, userRepo, settingsService, hub, notifier)
	chatbotService := services.NewChatbotService(chatbotRepo, userRepo, settingsService, os.Getenv("CHATBOT_API_URL"))
	exploreService := services.NewExploreService(userRepo, settingsService)
	childService := services.NewChildService(userRepo)

	// Set services in controllers
	controllers.SetAuthService(authService)
	controllers.SetSettingsService(settingsService)
	controllers.SetContentService(contentService)
	controllers.SetFriendService(friendService)
	controllers.SetMessageService(messageService)
	controllers.SetChatbotService(chatbotService)
	controllers.SetExploreService(exploreService)
	controllers.SetChildService(childService)
	controllers.SetWebSocketHub(hub)

	// Initialize Gin router
	r := gin.Default()

	// SPA живет на другом origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Register routes
	routes.RegisterRoutes(r)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
