package service

import (
	"github.com/yi-nology/tool_inventory/pkg/storage"
	"gorm.io/gorm"
)

// Service bundles the inventory services sharing one database handle.
type Service struct {
	Tools          *ToolService
	ToolVersions   *ToolVersionService
	Modules        *ModuleService
	ModuleVersions *ModuleVersionService
	Environments   *EnvironmentService
	Manifests      *ManifestService
}

// NewService wires every inventory service. store may be nil, in which case
// publishing manifests fails with ErrStorageUnavailable.
func NewService(dbConn *gorm.DB, store storage.Storage) *Service {
	l := NewLogic(dbConn)
	environments := NewEnvironmentService(l)
	return &Service{
		Tools:          NewToolService(l),
		ToolVersions:   NewToolVersionService(l),
		Modules:        NewModuleService(l),
		ModuleVersions: NewModuleVersionService(l),
		Environments:   environments,
		Manifests:      NewManifestService(l, environments, store),
	}
}
