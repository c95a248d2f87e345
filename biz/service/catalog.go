package service

import (
	"context"
	"errors"

	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/model/api"
	"gorm.io/gorm"
)

// store is the persistence surface a catalog needs. *db.CatalogDAO and
// *db.EnvironmentDAO both satisfy it.
type store[M any] interface {
	Create(ctx context.Context, db *gorm.DB, entity *M) error
	Save(ctx context.Context, db *gorm.DB, entity *M) error
	GetByKey(ctx context.Context, db *gorm.DB, key string) (*M, error)
	Exists(ctx context.Context, db *gorm.DB, filter db.Filter) (bool, error)
	Count(ctx context.Context, db *gorm.DB, filter db.Filter) (int64, error)
	List(ctx context.Context, db *gorm.DB, filter db.Filter, offset, limit int) ([]M, error)
	DeleteByKey(ctx context.Context, db *gorm.DB, key string) (int64, error)
}

// parentRef describes the record a child entity points at.
type parentRef[M any] struct {
	key     func(*M) string
	exists  func(ctx context.Context, key string) (bool, error)
	missing error
}

// kind is the per-entity capability set plugged into the generic catalog.
type kind[M any, O any] struct {
	store    store[M]
	notFound error
	exists   error
	// unique returns the filter matching records that share the entity's natural key.
	unique   func(*M) db.Filter
	parent   *parentRef[M]
	toObject func(*M) *O
	// decorate completes converted objects with data living outside the entity row.
	decorate func(ctx context.Context, objects []*O) error
}

// catalog implements create, read, update, delete and paging for one entity kind.
type catalog[M any, O any] struct {
	db   *gorm.DB
	kind kind[M, O]
}

func newCatalog[M any, O any](dbConn *gorm.DB, k kind[M, O]) *catalog[M, O] {
	return &catalog[M, O]{db: dbConn, kind: k}
}

func (c *catalog[M, O]) create(ctx context.Context, entity *M) (*O, error) {
	taken, err := c.kind.store.Exists(ctx, c.db, c.kind.unique(entity))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, c.kind.exists
	}
	if p := c.kind.parent; p != nil {
		ok, err := p.exists(ctx, p.key(entity))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.missing
		}
	}
	if err := c.kind.store.Create(ctx, c.db, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, c.kind.exists
		}
		return nil, err
	}
	return c.convert(ctx, entity)
}

func (c *catalog[M, O]) lookup(ctx context.Context, key string) (*M, error) {
	entity, err := c.kind.store.GetByKey(ctx, c.db, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.kind.notFound
		}
		return nil, err
	}
	return entity, nil
}

func (c *catalog[M, O]) get(ctx context.Context, key string) (*O, error) {
	entity, err := c.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	return c.convert(ctx, entity)
}

// update loads the entity, lets apply mutate it and saves every column back.
func (c *catalog[M, O]) update(ctx context.Context, key string, apply func(*M)) (*O, error) {
	entity, err := c.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	apply(entity)
	if err := c.kind.store.Save(ctx, c.db, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, c.kind.exists
		}
		return nil, err
	}
	return c.convert(ctx, entity)
}

func (c *catalog[M, O]) delete(ctx context.Context, key string) (*api.DeleteResult, error) {
	if _, err := c.lookup(ctx, key); err != nil {
		return nil, err
	}
	removed, err := c.kind.store.DeleteByKey(ctx, c.db, key)
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		return nil, c.kind.notFound
	}
	return &api.DeleteResult{ID: key}, nil
}

// page returns the page-th window of perPage records matching filter, in insertion order,
// together with the total number of pages.
func (c *catalog[M, O]) page(ctx context.Context, filter db.Filter, page, perPage int) ([]*O, int64, error) {
	count, err := c.kind.store.Count(ctx, c.db, filter)
	if err != nil {
		return nil, 0, err
	}
	if err := checkPage(count, page, perPage); err != nil {
		return nil, 0, err
	}
	entities, err := c.kind.store.List(ctx, c.db, filter, (page-1)*perPage, perPage)
	if err != nil {
		return nil, 0, err
	}
	objects := make([]*O, 0, len(entities))
	for i := range entities {
		objects = append(objects, c.kind.toObject(&entities[i]))
	}
	if c.kind.decorate != nil {
		if err := c.kind.decorate(ctx, objects); err != nil {
			return nil, 0, err
		}
	}
	return objects, pageCount(count, perPage), nil
}

func (c *catalog[M, O]) convert(ctx context.Context, entity *M) (*O, error) {
	obj := c.kind.toObject(entity)
	if c.kind.decorate != nil {
		if err := c.kind.decorate(ctx, []*O{obj}); err != nil {
			return nil, err
		}
	}
	return obj, nil
}
