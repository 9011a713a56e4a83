package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"thinkora-be/internal/constant"
	"thinkora-be/internal/entity"
	"thinkora-be/internal/repository/specification"
	"thinkora-be/internal/repository/unitofwork"
	"thinkora-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.CourseRepository())
	assert.NotNil(t, uow.ChatTurnRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Course CRUD and GPA source data", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     entity.UserRoleUser,
			Status:   entity.UserStatusActive,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		course := &entity.Course{
			Id:          uuid.New(),
			UserId:      user.Id,
			CourseName:  "Algorithms",
			Credits:     decimal.NewFromInt(3),
			LetterGrade: "A",
			CreatedAt:   time.Now(),
		}
		require.NoError(t, uow.CourseRepository().Create(ctx, course))

		found, err := uow.CourseRepository().FindOne(ctx,
			specification.ByID{ID: course.Id},
			specification.UserOwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Algorithms", found.CourseName)
		assert.True(t, found.Credits.Equal(decimal.NewFromInt(3)))

		require.NoError(t, uow.CourseRepository().Delete(ctx, course.Id))
	})

	t.Run("Chat transcript append and history order", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-chat-" + uuid.New().String() + "@example.com",
			FullName: "Chat Test User",
			Role:     entity.UserRoleUser,
			Status:   entity.UserStatusActive,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		now := time.Now()
		conversationID := "conv_integration"

		userTurn := &entity.ChatTurn{
			Id:             uuid.New(),
			UserId:         user.Id,
			ConversationId: conversationID,
			Role:           constant.ChatRoleUser,
			Content:        "hello",
			Context:        constant.DefaultChatContext,
			CreatedAt:      now,
		}
		require.NoError(t, uow.ChatTurnRepository().Create(ctx, userTurn))

		aiTurn := &entity.ChatTurn{
			Id:             uuid.New(),
			UserId:         user.Id,
			ConversationId: conversationID,
			Role:           constant.ChatRoleAi,
			Content:        "Hi there!",
			Context:        constant.DefaultChatContext,
			CreatedAt:      now.Add(time.Millisecond),
		}
		require.NoError(t, uow.ChatTurnRepository().Create(ctx, aiTurn))

		turns, err := uow.ChatTurnRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: 50},
		)
		require.NoError(t, err)
		require.Len(t, turns, 2)
		assert.Equal(t, constant.ChatRoleAi, turns[0].Role)
		assert.Equal(t, constant.ChatRoleUser, turns[1].Role)
	})
}
