package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an isolated in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // Reduce log noise in tests
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	return db
}

// CleanupTestDB closes the database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close DB: %v", err)
	}
}

// CreateTestTool creates a test tool with default values
func CreateTestTool(t *testing.T, db *gorm.DB, name string) *model.Tool {
	t.Helper()
	tool := &model.Tool{Name: name, Vendor: "Test vendor"}
	if err := NewToolDAO().Create(context.Background(), db, tool); err != nil {
		t.Fatalf("Failed to create test tool: %v", err)
	}
	return tool
}

// CreateTestToolVersion creates a version of the given tool
func CreateTestToolVersion(t *testing.T, db *gorm.DB, toolID, version string) *model.ToolVersion {
	t.Helper()
	tv := &model.ToolVersion{ToolID: toolID, Version: version}
	if err := NewToolVersionDAO().Create(context.Background(), db, tv); err != nil {
		t.Fatalf("Failed to create test tool version: %v", err)
	}
	return tv
}

// CreateTestEnvironment creates a test environment with default values
func CreateTestEnvironment(t *testing.T, db *gorm.DB, name string) *model.Environment {
	t.Helper()
	env := &model.Environment{Name: name, Informations: "Test environment"}
	if err := NewEnvironmentDAO().Create(context.Background(), db, env); err != nil {
		t.Fatalf("Failed to create test environment: %v", err)
	}
	return env
}
