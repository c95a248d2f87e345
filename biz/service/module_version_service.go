package service

import (
	"context"

	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

// ModuleVersionService manages module versions, unique per (module, version).
type ModuleVersionService struct {
	catalog *catalog[model.ModuleVersion, api.ModuleVersion]
}

func NewModuleVersionService(l *Logic) *ModuleVersionService {
	return &ModuleVersionService{catalog: newCatalog(l.db, kind[model.ModuleVersion, api.ModuleVersion]{
		store:    l.moduleVersionDAO,
		notFound: ErrModuleVersionNotFound,
		exists:   ErrModuleVersionExists,
		unique: func(v *model.ModuleVersion) db.Filter {
			return db.Filter{"module_id": v.ModuleID, "version": v.Version}
		},
		parent: &parentRef[model.ModuleVersion]{
			key: func(v *model.ModuleVersion) string { return v.ModuleID },
			exists: func(ctx context.Context, moduleID string) (bool, error) {
				return l.moduleDAO.ExistsByKey(ctx, l.db, moduleID)
			},
			missing: ErrModuleNotFound,
		},
		toObject: modelModuleVersionToAPI,
	})}
}

func (s *ModuleVersionService) CreateModuleVersion(ctx context.Context, req *api.CreateModuleVersionRequest) (*api.ModuleVersion, error) {
	return s.catalog.create(ctx, &model.ModuleVersion{
		ModuleID:     req.ModuleID,
		Version:      req.Version,
		Location:     req.Location,
		Informations: req.Informations,
	})
}

func (s *ModuleVersionService) DeleteModuleVersion(ctx context.Context, moduleVersionID string) (*api.DeleteResult, error) {
	return s.catalog.delete(ctx, moduleVersionID)
}

func (s *ModuleVersionService) UpdateModuleVersionInformations(ctx context.Context, req *api.UpdateModuleVersionRequest) (*api.ModuleVersion, error) {
	return s.catalog.update(ctx, req.ModuleVersionID, func(v *model.ModuleVersion) {
		if req.Location != nil {
			v.Location = *req.Location
		}
		if req.Informations != nil {
			v.Informations = *req.Informations
		}
	})
}

func (s *ModuleVersionService) GetModuleVersion(ctx context.Context, moduleVersionID string) (*api.ModuleVersion, error) {
	return s.catalog.get(ctx, moduleVersionID)
}

func (s *ModuleVersionService) GetModuleVersions(ctx context.Context, moduleID string, page, perPage int) (*api.ModuleVersionPage, error) {
	var filter db.Filter
	if moduleID != "" {
		filter = db.Filter{"module_id": moduleID}
	}
	list, count, err := s.catalog.page(ctx, filter, page, perPage)
	if err != nil {
		return nil, err
	}
	return &api.ModuleVersionPage{ModuleVersions: list, PageCount: count}, nil
}

func modelModuleVersionToAPI(v *model.ModuleVersion) *api.ModuleVersion {
	if v == nil {
		return nil
	}
	return &api.ModuleVersion{
		ModuleVersionID: v.ModuleVersionID,
		ModuleID:        v.ModuleID,
		Version:         v.Version,
		Location:        v.Location,
		Informations:    v.Informations,
		CreationDate:    v.CreatedAt,
	}
}
