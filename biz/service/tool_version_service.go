package service

import (
	"context"

	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

// ToolVersionService manages tool versions, unique per (tool, version).
type ToolVersionService struct {
	catalog *catalog[model.ToolVersion, api.ToolVersion]
}

func NewToolVersionService(l *Logic) *ToolVersionService {
	return &ToolVersionService{catalog: newCatalog(l.db, kind[model.ToolVersion, api.ToolVersion]{
		store:    l.toolVersionDAO,
		notFound: ErrToolVersionNotFound,
		exists:   ErrToolVersionExists,
		unique: func(v *model.ToolVersion) db.Filter {
			return db.Filter{"tool_id": v.ToolID, "version": v.Version}
		},
		parent: &parentRef[model.ToolVersion]{
			key: func(v *model.ToolVersion) string { return v.ToolID },
			exists: func(ctx context.Context, toolID string) (bool, error) {
				return l.toolDAO.ExistsByKey(ctx, l.db, toolID)
			},
			missing: ErrToolVersionParentMissing,
		},
		toObject: modelToolVersionToAPI,
	})}
}

func (s *ToolVersionService) CreateToolVersion(ctx context.Context, req *api.CreateToolVersionRequest) (*api.ToolVersion, error) {
	return s.catalog.create(ctx, &model.ToolVersion{
		ToolID:       req.ToolID,
		Version:      req.Version,
		Location:     req.Location,
		Informations: req.Informations,
	})
}

func (s *ToolVersionService) DeleteToolVersion(ctx context.Context, toolVersionID string) (*api.DeleteResult, error) {
	return s.catalog.delete(ctx, toolVersionID)
}

func (s *ToolVersionService) UpdateToolVersionInformations(ctx context.Context, req *api.UpdateToolVersionRequest) (*api.ToolVersion, error) {
	return s.catalog.update(ctx, req.ToolVersionID, func(v *model.ToolVersion) {
		if req.Location != nil {
			v.Location = *req.Location
		}
		if req.Informations != nil {
			v.Informations = *req.Informations
		}
	})
}

func (s *ToolVersionService) GetToolVersion(ctx context.Context, toolVersionID string) (*api.ToolVersion, error) {
	return s.catalog.get(ctx, toolVersionID)
}

// GetToolVersions pages through tool versions, restricted to one tool when toolID is set.
func (s *ToolVersionService) GetToolVersions(ctx context.Context, toolID string, page, perPage int) (*api.ToolVersionPage, error) {
	var filter db.Filter
	if toolID != "" {
		filter = db.Filter{"tool_id": toolID}
	}
	list, count, err := s.catalog.page(ctx, filter, page, perPage)
	if err != nil {
		return nil, err
	}
	return &api.ToolVersionPage{ToolVersions: list, PageCount: count}, nil
}

func modelToolVersionToAPI(v *model.ToolVersion) *api.ToolVersion {
	if v == nil {
		return nil
	}
	return &api.ToolVersion{
		ToolVersionID: v.ToolVersionID,
		ToolID:        v.ToolID,
		Version:       v.Version,
		Location:      v.Location,
		Informations:  v.Informations,
		CreationDate:  v.CreatedAt,
	}
}
