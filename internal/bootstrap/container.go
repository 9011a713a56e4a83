package bootstrap

import (
	"thinkora-be/internal/config"
	"thinkora-be/internal/controller"
	"thinkora-be/internal/pkg/logger"
	"thinkora-be/internal/pkg/mailer"
	"thinkora-be/internal/repository/memory"
	"thinkora-be/internal/repository/unitofwork"
	"thinkora-be/internal/service"
	"thinkora-be/pkg/assistant"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	CourseController controller.ICourseController
	GpaController    controller.IGpaController
	ChatController   controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. In-Memory Conversation Registry
	conversationRepo := memory.NewConversationRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Chat.ReplyTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Chat.ReplyTopic,
		uowFactory,
	)

	authService := service.NewAuthService(uowFactory, emailService, publisherService)
	courseService := service.NewCourseService(uowFactory)
	gpaService := service.NewGpaService(uowFactory)
	chatService := service.NewChatService(
		uowFactory,
		conversationRepo,
		assistant.NewRouter(),
		publisherService,
		sysLogger,
		cfg.Chat.DemoEmail,
		cfg.Chat.HistoryLimit,
	)

	// 5. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService),
		CourseController: controller.NewCourseController(courseService, gpaService),
		GpaController:    controller.NewGpaController(gpaService),
		ChatController:   controller.NewChatController(chatService),
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
