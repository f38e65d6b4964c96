package config

import (
	"KidSpace/models"
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var FCMClient *messaging.Client

// JWTKey возвращает ключ подписи токенов. Секрет читается при каждом
// вызове: пакеты инициализируются раньше godotenv.Load() в main,
// и значение из .env иначе было бы потеряно
func JWTKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func InitDatabase() {
	// Получаем значения из environment variables
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	log.Printf("Connecting to database: host=%s user=%s dbname=%s port=%s sslmode=%s",
		host, user, dbname, port, sslmode)

	// Формируем строку подключения
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Successfully connected to database!")

	DB.AutoMigrate(
		&models.User{},
		&models.ParentalSettings{},
		&models.Content{},
		&models.FriendRequest{},
		&models.Friend{},
		&models.Message{},
		&models.ChatbotConversation{},
	)
}

// InitFirebase инициализирует Firebase Cloud Messaging.
// Push-уведомления опциональны: без учетных данных сервис работает без них.
func InitFirebase() {
	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, push notifications disabled")
		return
	}

	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("error initializing firebase app: %v, push notifications disabled", err)
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("error initializing FCM client: %v, push notifications disabled", err)
		return
	}

	FCMClient = client
}
