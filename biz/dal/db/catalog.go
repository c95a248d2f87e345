package db

import "github.com/yi-nology/tool_inventory/biz/dal/model"

func NewToolDAO() *CatalogDAO[model.Tool] {
	return NewCatalogDAO[model.Tool]("tool_id")
}

func NewToolVersionDAO() *CatalogDAO[model.ToolVersion] {
	return NewCatalogDAO[model.ToolVersion]("tool_version_id")
}

func NewModuleDAO() *CatalogDAO[model.Module] {
	return NewCatalogDAO[model.Module]("module_id")
}

func NewModuleVersionDAO() *CatalogDAO[model.ModuleVersion] {
	return NewCatalogDAO[model.ModuleVersion]("module_version_id")
}
