package service

import (
	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"gorm.io/gorm"
)

// Logic holds the database handle and the DAOs shared by the entity services.
type Logic struct {
	db               *gorm.DB
	toolDAO          *db.CatalogDAO[model.Tool]
	toolVersionDAO   *db.CatalogDAO[model.ToolVersion]
	moduleDAO        *db.CatalogDAO[model.Module]
	moduleVersionDAO *db.CatalogDAO[model.ModuleVersion]
	environmentDAO   *db.EnvironmentDAO
}

func NewLogic(dbConn *gorm.DB) *Logic {
	return &Logic{
		db:               dbConn,
		toolDAO:          db.NewToolDAO(),
		toolVersionDAO:   db.NewToolVersionDAO(),
		moduleDAO:        db.NewModuleDAO(),
		moduleVersionDAO: db.NewModuleVersionDAO(),
		environmentDAO:   db.NewEnvironmentDAO(),
	}
}
