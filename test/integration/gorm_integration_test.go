package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"freedbot-be/internal/repository/implementation"
	"freedbot-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Manual Repository", func(t *testing.T) {
		repo := implementation.NewManualRepository(gormDB)
		count, err := repo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Manual chunk count: %d", count)
	})

	t.Run("Check Issue Repository", func(t *testing.T) {
		repo := implementation.NewIssueRepository(gormDB)
		count, err := repo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Common issue count: %d", count)
	})

	t.Run("Check Stage Presets", func(t *testing.T) {
		repo := implementation.NewStagePresetRepository(gormDB)
		presets, err := repo.FindAllOrdered(context.Background())
		assert.NoError(t, err)
		t.Logf("Stage preset count: %d", len(presets))
	})
}
