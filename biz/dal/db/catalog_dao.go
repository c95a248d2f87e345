package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Filter restricts catalog queries by exact column values. A nil or empty filter matches everything.
type Filter map[string]any

// CatalogDAO wraps basic CRUD operations for a catalog entity addressed by an external key column.
type CatalogDAO[M any] struct {
	keyColumn string
}

func NewCatalogDAO[M any](keyColumn string) *CatalogDAO[M] {
	return &CatalogDAO[M]{keyColumn: keyColumn}
}

// KeyColumn returns the column holding the entity's external key.
func (dao *CatalogDAO[M]) KeyColumn() string {
	return dao.keyColumn
}

// Create persists a new entity.
func (dao *CatalogDAO[M]) Create(ctx context.Context, db *gorm.DB, entity *M) error {
	if entity == nil {
		return errors.New("entity must not be nil")
	}
	return db.WithContext(ctx).Create(entity).Error
}

// Save writes every column of an already loaded entity.
func (dao *CatalogDAO[M]) Save(ctx context.Context, db *gorm.DB, entity *M) error {
	if entity == nil {
		return errors.New("entity must not be nil")
	}
	return db.WithContext(ctx).Save(entity).Error
}

// GetByKey fetches a single entity by its external key.
func (dao *CatalogDAO[M]) GetByKey(ctx context.Context, db *gorm.DB, key string) (*M, error) {
	var entity M
	if err := db.WithContext(ctx).
		Where(dao.keyColumn+" = ?", key).
		First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindOne fetches the first entity matching filter.
func (dao *CatalogDAO[M]) FindOne(ctx context.Context, db *gorm.DB, filter Filter) (*M, error) {
	var entity M
	if err := scoped(db.WithContext(ctx), filter).
		Order("id ASC").
		First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Exists reports whether at least one entity matches filter.
func (dao *CatalogDAO[M]) Exists(ctx context.Context, db *gorm.DB, filter Filter) (bool, error) {
	count, err := dao.Count(ctx, db, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByKey checks if an entity with the given external key exists.
func (dao *CatalogDAO[M]) ExistsByKey(ctx context.Context, db *gorm.DB, key string) (bool, error) {
	return dao.Exists(ctx, db, Filter{dao.keyColumn: key})
}

// Count returns the number of entities matching filter.
func (dao *CatalogDAO[M]) Count(ctx context.Context, db *gorm.DB, filter Filter) (int64, error) {
	var count int64
	if err := scoped(db.WithContext(ctx).Model(new(M)), filter).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// List returns up to limit entities matching filter, skipping offset, in insertion order.
func (dao *CatalogDAO[M]) List(ctx context.Context, db *gorm.DB, filter Filter, offset, limit int) ([]M, error) {
	var entities []M
	if err := scoped(db.WithContext(ctx), filter).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// ListByKeys returns the entities whose external key is in keys.
func (dao *CatalogDAO[M]) ListByKeys(ctx context.Context, db *gorm.DB, keys []string) ([]M, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var entities []M
	if err := db.WithContext(ctx).
		Where(dao.keyColumn+" IN ?", keys).
		Order("id ASC").
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// DeleteByKey performs a hard delete by external key and reports the number of removed rows.
func (dao *CatalogDAO[M]) DeleteByKey(ctx context.Context, db *gorm.DB, key string) (int64, error) {
	result := db.WithContext(ctx).
		Unscoped().
		Where(dao.keyColumn+" = ?", key).
		Delete(new(M))
	return result.RowsAffected, result.Error
}

func scoped(tx *gorm.DB, filter Filter) *gorm.DB {
	if len(filter) == 0 {
		return tx
	}
	return tx.Where(map[string]any(filter))
}
