package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"gorm.io/gorm"
)

func TestCatalogDAO_ListAndCount(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewToolVersionDAO()
	ctx := context.Background()

	tool := CreateTestTool(t, db, "paged")
	other := CreateTestTool(t, db, "other")
	for i := 0; i < 5; i++ {
		CreateTestToolVersion(t, db, tool.ToolID, fmt.Sprintf("1.0.%d", i))
	}
	CreateTestToolVersion(t, db, other.ToolID, "9.9.9")

	t.Run("CountFiltered", func(t *testing.T) {
		count, err := dao.Count(ctx, db, Filter{"tool_id": tool.ToolID})
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 5 {
			t.Errorf("Expected 5, got %d", count)
		}
	})

	t.Run("CountAll", func(t *testing.T) {
		count, err := dao.Count(ctx, db, nil)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 6 {
			t.Errorf("Expected 6, got %d", count)
		}
	})

	t.Run("ListWindow", func(t *testing.T) {
		list, err := dao.List(ctx, db, Filter{"tool_id": tool.ToolID}, 2, 2)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(list))
		}
		if list[0].Version != "1.0.2" || list[1].Version != "1.0.3" {
			t.Errorf("Unexpected window %s, %s", list[0].Version, list[1].Version)
		}
	})
}

func TestCatalogDAO_UniqueVersionPair(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewToolVersionDAO()
	ctx := context.Background()

	tool := CreateTestTool(t, db, "unique")
	CreateTestToolVersion(t, db, tool.ToolID, "1.0.0")

	err := dao.Create(ctx, db, &model.ToolVersion{ToolID: tool.ToolID, Version: "1.0.0"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("Expected ErrDuplicatedKey, got %v", err)
	}

	count, err := dao.Count(ctx, db, Filter{"tool_id": tool.ToolID})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected a single record, got %d", count)
	}
}

func TestCatalogDAO_SaveAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewToolDAO()
	ctx := context.Background()

	tool := CreateTestTool(t, db, "mutable")

	tool.Vendor = "Updated vendor"
	if err := dao.Save(ctx, db, tool); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	found, err := dao.GetByKey(ctx, db, tool.ToolID)
	if err != nil {
		t.Fatalf("GetByKey failed: %v", err)
	}
	if found.Vendor != "Updated vendor" {
		t.Errorf("Expected updated vendor, got %q", found.Vendor)
	}

	removed, err := dao.DeleteByKey(ctx, db, tool.ToolID)
	if err != nil {
		t.Fatalf("DeleteByKey failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 removed row, got %d", removed)
	}
	exists, err := dao.ExistsByKey(ctx, db, tool.ToolID)
	if err != nil {
		t.Fatalf("ExistsByKey failed: %v", err)
	}
	if exists {
		t.Error("Expected tool to be gone")
	}
}
