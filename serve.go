package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/spf13/cobra"
	"github.com/yi-nology/tool_inventory/biz/dal/model"
	"github.com/yi-nology/tool_inventory/biz/handler"
	"github.com/yi-nology/tool_inventory/biz/middleware"
	"github.com/yi-nology/tool_inventory/biz/router"
	"github.com/yi-nology/tool_inventory/biz/service"
	"github.com/yi-nology/tool_inventory/pkg/database"
	"github.com/yi-nology/tool_inventory/pkg/identity"
	"github.com/yi-nology/tool_inventory/pkg/lock"
	"github.com/yi-nology/tool_inventory/pkg/redis"
	"github.com/yi-nology/tool_inventory/pkg/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = database.Close(db) }()
	if err := database.Migrate(db, model.All()...); err != nil {
		return err
	}

	directory, err := identity.New(cfg.Identity)
	if err != nil {
		return err
	}
	if _, err := service.EnsureToolManagerRole(ctx, directory, cfg.Identity.AdminRole, cfg.Identity.ToolManagerRole); err != nil {
		return fmt.Errorf("bootstrap roles: %w", err)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	var writeLock middleware.WriteLocker
	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		wl := lock.New(redisClient, cfg.Redis)
		writeLock = wl
		hlog.Infof("write lock enabled on %s", wl.Key())
	}

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithExitWaitTime(cfg.Server.ExitWaitTime),
	)
	router.Register(h.Engine, handler.New(service.NewService(db, store)), router.Options{
		Authorizer: service.NewAuthorizer(directory, directory, cfg.Identity.ToolManagerRole),
		WriteLock:  writeLock,
		CORS:       &cfg.CORS,
	})

	hlog.Infof("listening on %s (database=%s, storage=%s)", cfg.Server.Address, cfg.Database.Driver, store.Type())
	h.Spin()
	return nil
}
