package db

import (
	"context"

	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnvironmentDAO wraps CRUD operations for environments and their version lists.
type EnvironmentDAO struct {
	*CatalogDAO[model.Environment]
}

func NewEnvironmentDAO() *EnvironmentDAO {
	return &EnvironmentDAO{CatalogDAO: NewCatalogDAO[model.Environment]("environment_id")}
}

// GetByName fetches a single environment by name.
func (dao *EnvironmentDAO) GetByName(ctx context.Context, db *gorm.DB, name string) (*model.Environment, error) {
	return dao.FindOne(ctx, db, Filter{"name": name})
}

// DeleteByKey removes an environment together with its list entries.
func (dao *EnvironmentDAO) DeleteByKey(ctx context.Context, db *gorm.DB, environmentID string) (int64, error) {
	var removed int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("environment_id = ?", environmentID).
			Delete(&model.EnvironmentToolVersion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("environment_id = ?", environmentID).
			Delete(&model.EnvironmentModuleVersion{}).Error; err != nil {
			return err
		}
		result := tx.Where("environment_id = ?", environmentID).Delete(&model.Environment{})
		removed = result.RowsAffected
		return result.Error
	})
	return removed, err
}

// AddToolVersion appends a tool version to the environment unless it is already listed.
// It reports false when the entry was already present.
func (dao *EnvironmentDAO) AddToolVersion(ctx context.Context, db *gorm.DB, environmentID, toolVersionID string) (bool, error) {
	return insertIfAbsent(ctx, db, &model.EnvironmentToolVersion{
		EnvironmentID: environmentID,
		ToolVersionID: toolVersionID,
	})
}

// RemoveToolVersion drops a tool version from the environment and reports whether it was listed.
func (dao *EnvironmentDAO) RemoveToolVersion(ctx context.Context, db *gorm.DB, environmentID, toolVersionID string) (bool, error) {
	return deleteIfPresent(ctx, db, &model.EnvironmentToolVersion{}, "tool_version_id", environmentID, toolVersionID)
}

// AddModuleVersion appends a module version to the environment unless it is already listed.
func (dao *EnvironmentDAO) AddModuleVersion(ctx context.Context, db *gorm.DB, environmentID, moduleVersionID string) (bool, error) {
	return insertIfAbsent(ctx, db, &model.EnvironmentModuleVersion{
		EnvironmentID:   environmentID,
		ModuleVersionID: moduleVersionID,
	})
}

// RemoveModuleVersion drops a module version from the environment and reports whether it was listed.
func (dao *EnvironmentDAO) RemoveModuleVersion(ctx context.Context, db *gorm.DB, environmentID, moduleVersionID string) (bool, error) {
	return deleteIfPresent(ctx, db, &model.EnvironmentModuleVersion{}, "module_version_id", environmentID, moduleVersionID)
}

// ToolVersionIDs returns the tool version lists of the given environments, keyed by environment id.
func (dao *EnvironmentDAO) ToolVersionIDs(ctx context.Context, db *gorm.DB, environmentIDs ...string) (map[string][]string, error) {
	return memberIDs(ctx, db, &model.EnvironmentToolVersion{}, "tool_version_id", environmentIDs)
}

// ModuleVersionIDs returns the module version lists of the given environments, keyed by environment id.
func (dao *EnvironmentDAO) ModuleVersionIDs(ctx context.Context, db *gorm.DB, environmentIDs ...string) (map[string][]string, error) {
	return memberIDs(ctx, db, &model.EnvironmentModuleVersion{}, "module_version_id", environmentIDs)
}

func insertIfAbsent(ctx context.Context, db *gorm.DB, row any) (bool, error) {
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func deleteIfPresent(ctx context.Context, db *gorm.DB, table any, column, environmentID, memberID string) (bool, error) {
	result := db.WithContext(ctx).
		Where("environment_id = ? AND "+column+" = ?", environmentID, memberID).
		Delete(table)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type memberRow struct {
	EnvironmentID string
	MemberID      string
}

func memberIDs(ctx context.Context, db *gorm.DB, table any, column string, environmentIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(environmentIDs))
	if len(environmentIDs) == 0 {
		return result, nil
	}
	var rows []memberRow
	if err := db.WithContext(ctx).
		Model(table).
		Select("environment_id, "+column+" AS member_id").
		Where("environment_id IN ?", environmentIDs).
		Order("id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.EnvironmentID] = append(result[row.EnvironmentID], row.MemberID)
	}
	return result, nil
}
