package service

import (
	"context"

	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

// ModuleService manages modules. Each module belongs to one tool.
type ModuleService struct {
	catalog *catalog[model.Module, api.Module]
}

func NewModuleService(l *Logic) *ModuleService {
	return &ModuleService{catalog: newCatalog(l.db, kind[model.Module, api.Module]{
		store:    l.moduleDAO,
		notFound: ErrModuleNotFound,
		exists:   ErrModuleExists,
		unique: func(m *model.Module) db.Filter {
			return db.Filter{"name": m.Name}
		},
		parent: &parentRef[model.Module]{
			key: func(m *model.Module) string { return m.ToolID },
			exists: func(ctx context.Context, toolID string) (bool, error) {
				return l.toolDAO.ExistsByKey(ctx, l.db, toolID)
			},
			missing: ErrToolNotFound,
		},
		toObject: modelModuleToAPI,
	})}
}

func (s *ModuleService) CreateModule(ctx context.Context, req *api.CreateModuleRequest) (*api.Module, error) {
	return s.catalog.create(ctx, &model.Module{
		Name:         req.Name,
		ToolID:       req.ToolID,
		Informations: req.Informations,
		Vendor:       req.Vendor,
	})
}

func (s *ModuleService) DeleteModule(ctx context.Context, moduleID string) (*api.DeleteResult, error) {
	return s.catalog.delete(ctx, moduleID)
}

func (s *ModuleService) UpdateModuleInformations(ctx context.Context, req *api.UpdateModuleRequest) (*api.Module, error) {
	return s.catalog.update(ctx, req.ModuleID, func(m *model.Module) {
		if req.Informations != nil {
			m.Informations = *req.Informations
		}
		if req.Vendor != nil {
			m.Vendor = *req.Vendor
		}
	})
}

func (s *ModuleService) GetModule(ctx context.Context, moduleID string) (*api.Module, error) {
	return s.catalog.get(ctx, moduleID)
}

func (s *ModuleService) GetModules(ctx context.Context, toolID string, page, perPage int) (*api.ModulePage, error) {
	var filter db.Filter
	if toolID != "" {
		filter = db.Filter{"tool_id": toolID}
	}
	list, count, err := s.catalog.page(ctx, filter, page, perPage)
	if err != nil {
		return nil, err
	}
	return &api.ModulePage{Modules: list, PageCount: count}, nil
}

func modelModuleToAPI(m *model.Module) *api.Module {
	if m == nil {
		return nil
	}
	return &api.Module{
		ModuleID:     m.ModuleID,
		Name:         m.Name,
		ToolID:       m.ToolID,
		Informations: m.Informations,
		Vendor:       m.Vendor,
	}
}
