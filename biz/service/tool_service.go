package service

import (
	"context"

	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

// ToolService manages tools.
type ToolService struct {
	catalog *catalog[model.Tool, api.Tool]
}

func NewToolService(l *Logic) *ToolService {
	return &ToolService{catalog: newCatalog(l.db, kind[model.Tool, api.Tool]{
		store:    l.toolDAO,
		notFound: ErrToolNotFound,
		exists:   ErrToolExists,
		unique: func(t *model.Tool) db.Filter {
			return db.Filter{"name": t.Name}
		},
		toObject: modelToolToAPI,
	})}
}

// CreateTool creates a tool with a globally unique name.
func (s *ToolService) CreateTool(ctx context.Context, req *api.CreateToolRequest) (*api.Tool, error) {
	return s.catalog.create(ctx, &model.Tool{
		Name:   req.Name,
		Vendor: req.Vendor,
	})
}

func (s *ToolService) DeleteTool(ctx context.Context, toolID string) (*api.DeleteResult, error) {
	return s.catalog.delete(ctx, toolID)
}

// UpdateToolInformations sets the supplied optional fields and leaves the others untouched.
func (s *ToolService) UpdateToolInformations(ctx context.Context, req *api.UpdateToolRequest) (*api.Tool, error) {
	return s.catalog.update(ctx, req.ToolID, func(t *model.Tool) {
		if req.Vendor != nil {
			t.Vendor = *req.Vendor
		}
	})
}

func (s *ToolService) GetTool(ctx context.Context, toolID string) (*api.Tool, error) {
	return s.catalog.get(ctx, toolID)
}

func (s *ToolService) GetTools(ctx context.Context, page, perPage int) (*api.ToolPage, error) {
	list, count, err := s.catalog.page(ctx, nil, page, perPage)
	if err != nil {
		return nil, err
	}
	return &api.ToolPage{Tools: list, PageCount: count}, nil
}

func modelToolToAPI(t *model.Tool) *api.Tool {
	if t == nil {
		return nil
	}
	return &api.Tool{
		ToolID: t.ToolID,
		Name:   t.Name,
		Vendor: t.Vendor,
	}
}
