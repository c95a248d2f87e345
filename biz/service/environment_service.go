package service

import (
	"context"
	"errors"

	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"github.com/yi-nology/tool_inventory/biz/model/api"
	"gorm.io/gorm"
)

// EnvironmentService manages environments and their tool version and module version lists.
type EnvironmentService struct {
	logic   *Logic
	catalog *catalog[model.Environment, api.Environment]
}

func NewEnvironmentService(l *Logic) *EnvironmentService {
	s := &EnvironmentService{logic: l}
	s.catalog = newCatalog(l.db, kind[model.Environment, api.Environment]{
		store:    l.environmentDAO,
		notFound: ErrEnvironmentNotFound,
		exists:   ErrEnvironmentExists,
		unique: func(e *model.Environment) db.Filter {
			return db.Filter{"name": e.Name}
		},
		toObject: modelEnvironmentToAPI,
		decorate: s.attachLists,
	})
	return s
}

// CreateEnvironment creates an environment with empty lists.
func (s *EnvironmentService) CreateEnvironment(ctx context.Context, req *api.CreateEnvironmentRequest) (*api.Environment, error) {
	return s.catalog.create(ctx, &model.Environment{
		Name:         req.Name,
		Informations: req.Informations,
	})
}

func (s *EnvironmentService) UpdateEnvironment(ctx context.Context, req *api.UpdateEnvironmentRequest) (*api.Environment, error) {
	return s.catalog.update(ctx, req.EnvironmentID, func(e *model.Environment) {
		if req.Informations != nil {
			e.Informations = *req.Informations
		}
	})
}

func (s *EnvironmentService) DeleteEnvironment(ctx context.Context, environmentID string) (*api.DeleteResult, error) {
	return s.catalog.delete(ctx, environmentID)
}

func (s *EnvironmentService) GetEnvironment(ctx context.Context, environmentID string) (*api.Environment, error) {
	return s.catalog.get(ctx, environmentID)
}

func (s *EnvironmentService) GetEnvironments(ctx context.Context, page, perPage int) (*api.EnvironmentPage, error) {
	list, count, err := s.catalog.page(ctx, nil, page, perPage)
	if err != nil {
		return nil, err
	}
	return &api.EnvironmentPage{Environments: list, PageCount: count}, nil
}

// FindEnvironmentByName returns the environment with the given name.
func (s *EnvironmentService) FindEnvironmentByName(ctx context.Context, name string) (*api.Environment, error) {
	entity, err := s.logic.environmentDAO.GetByName(ctx, s.logic.db, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnvironmentNotFound
		}
		return nil, err
	}
	return s.catalog.convert(ctx, entity)
}

// AddToolVersion appends a tool version to the environment's tool list.
func (s *EnvironmentService) AddToolVersion(ctx context.Context, environmentID, toolVersionID string) (*api.Environment, error) {
	env, err := s.catalog.get(ctx, environmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireToolVersion(ctx, toolVersionID); err != nil {
		return nil, err
	}
	if env.HasTool(toolVersionID) {
		return nil, ErrToolVersionAlreadyInEnvironment
	}
	added, err := s.logic.environmentDAO.AddToolVersion(ctx, s.logic.db, environmentID, toolVersionID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, ErrToolVersionAlreadyInEnvironment
	}
	return s.catalog.get(ctx, environmentID)
}

// RemoveToolVersion drops a tool version from the environment's tool list.
func (s *EnvironmentService) RemoveToolVersion(ctx context.Context, environmentID, toolVersionID string) (*api.Environment, error) {
	env, err := s.catalog.get(ctx, environmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireToolVersion(ctx, toolVersionID); err != nil {
		return nil, err
	}
	if !env.HasTool(toolVersionID) {
		return nil, ErrToolVersionNotInEnvironment
	}
	removed, err := s.logic.environmentDAO.RemoveToolVersion(ctx, s.logic.db, environmentID, toolVersionID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrToolVersionNotInEnvironment
	}
	return s.catalog.get(ctx, environmentID)
}

// AddModuleVersion appends a module version to the environment's module list.
func (s *EnvironmentService) AddModuleVersion(ctx context.Context, environmentID, moduleVersionID string) (*api.Environment, error) {
	env, err := s.catalog.get(ctx, environmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireModuleVersion(ctx, moduleVersionID); err != nil {
		return nil, err
	}
	if env.HasModule(moduleVersionID) {
		return nil, ErrModuleVersionAlreadyInEnvironment
	}
	added, err := s.logic.environmentDAO.AddModuleVersion(ctx, s.logic.db, environmentID, moduleVersionID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, ErrModuleVersionAlreadyInEnvironment
	}
	return s.catalog.get(ctx, environmentID)
}

// RemoveModuleVersion drops a module version from the environment's module list.
func (s *EnvironmentService) RemoveModuleVersion(ctx context.Context, environmentID, moduleVersionID string) (*api.Environment, error) {
	env, err := s.catalog.get(ctx, environmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireModuleVersion(ctx, moduleVersionID); err != nil {
		return nil, err
	}
	if !env.HasModule(moduleVersionID) {
		return nil, ErrModuleVersionNotInEnvironment
	}
	removed, err := s.logic.environmentDAO.RemoveModuleVersion(ctx, s.logic.db, environmentID, moduleVersionID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrModuleVersionNotInEnvironment
	}
	return s.catalog.get(ctx, environmentID)
}

func (s *EnvironmentService) requireToolVersion(ctx context.Context, toolVersionID string) error {
	ok, err := s.logic.toolVersionDAO.ExistsByKey(ctx, s.logic.db, toolVersionID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrToolVersionNotFound
	}
	return nil
}

func (s *EnvironmentService) requireModuleVersion(ctx context.Context, moduleVersionID string) error {
	ok, err := s.logic.moduleVersionDAO.ExistsByKey(ctx, s.logic.db, moduleVersionID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrModuleVersionNotFound
	}
	return nil
}

// attachLists fills the tools and modules lists of converted environments.
func (s *EnvironmentService) attachLists(ctx context.Context, envs []*api.Environment) error {
	ids := make([]string, 0, len(envs))
	for _, env := range envs {
		ids = append(ids, env.EnvironmentID)
	}
	tools, err := s.logic.environmentDAO.ToolVersionIDs(ctx, s.logic.db, ids...)
	if err != nil {
		return err
	}
	modules, err := s.logic.environmentDAO.ModuleVersionIDs(ctx, s.logic.db, ids...)
	if err != nil {
		return err
	}
	for _, env := range envs {
		if list, ok := tools[env.EnvironmentID]; ok {
			env.Tools = list
		}
		if list, ok := modules[env.EnvironmentID]; ok {
			env.Modules = list
		}
	}
	return nil
}

func modelEnvironmentToAPI(env *model.Environment) *api.Environment {
	if env == nil {
		return nil
	}
	return &api.Environment{
		EnvironmentID: env.EnvironmentID,
		Name:          env.Name,
		Informations:  env.Informations,
		Tools:         []string{},
		Modules:       []string{},
	}
}
