package router

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/yi-nology/tool_inventory/biz/handler"
	"github.com/yi-nology/tool_inventory/biz/middleware"
	"github.com/yi-nology/tool_inventory/pkg/config"
)

// Options carries what the routes need besides the handler.
type Options struct {
	// Authorizer decides who may call mutating routes.
	Authorizer middleware.ToolManagerChecker
	// WriteLock serialises mutating routes across replicas. Nil disables it.
	WriteLock middleware.WriteLocker
	CORS      *config.CORSConfig
}

// Register installs middleware and every inventory route on r.
func Register(r *route.Engine, h *handler.Handler, opts Options) {
	r.Use(
		middleware.Recovery(),
		middleware.Logging(),
		middleware.CORS(opts.CORS),
		middleware.ErrorHandler(),
	)

	r.GET("/ping", handler.Ping)
	r.GET("/version", handler.GetVersion)
	r.GET("/manifests/*key", middleware.RequireAuth(), h.GetPublishedManifest)

	read := r.Group("/", middleware.RequireAuth())
	write := r.Group("/", append([]app.HandlerFunc{
		middleware.RequireAuth(),
		middleware.RequireToolManager(opts.Authorizer),
	}, middleware.WriteLock(opts.WriteLock)...)...)

	write.POST("/createTool", h.CreateTool)
	write.DELETE("/deleteTool", h.DeleteTool)
	write.PUT("/updateToolInformations", h.UpdateToolInformations)
	read.GET("/getTool", h.GetTool)
	read.GET("/getTools", h.GetTools)

	write.POST("/createToolVersion", h.CreateToolVersion)
	write.DELETE("/deleteToolVersion", h.DeleteToolVersion)
	write.PUT("/updateToolVersionInformations", h.UpdateToolVersionInformations)
	read.GET("/getToolVersion", h.GetToolVersion)
	read.GET("/getToolVersions", h.GetToolVersions)

	write.POST("/createModule", h.CreateModule)
	write.DELETE("/deleteModule", h.DeleteModule)
	write.PUT("/updateModuleInformations", h.UpdateModuleInformations)
	read.GET("/getModule", h.GetModule)
	read.GET("/getModules", h.GetModules)

	write.POST("/createModuleVersion", h.CreateModuleVersion)
	write.DELETE("/deleteModuleVersion", h.DeleteModuleVersion)
	write.PUT("/updateModuleVersionInformations", h.UpdateModuleVersionInformations)
	read.GET("/getModuleVersion", h.GetModuleVersion)
	read.GET("/getModuleVersions", h.GetModuleVersions)

	write.POST("/createEnvironment", h.CreateEnvironment)
	write.DELETE("/deleteEnvironment", h.DeleteEnvironment)
	write.PUT("/updateEnvironmentInformations", h.UpdateEnvironmentInformations)
	read.GET("/getEnvironment", h.GetEnvironment)
	read.GET("/getEnvironmentByName", h.GetEnvironmentByName)
	read.GET("/getEnvironments", h.GetEnvironments)
	write.PUT("/addToolVersionToEnvironment", h.AddToolVersionToEnvironment)
	write.PUT("/removeToolVersionFromEnvironment", h.RemoveToolVersionFromEnvironment)
	write.PUT("/addModuleVersionToEnvironment", h.AddModuleVersionToEnvironment)
	write.PUT("/removeModuleVersionFromEnvironment", h.RemoveModuleVersionFromEnvironment)

	read.GET("/exportEnvironment", h.ExportEnvironment)
	write.POST("/publishEnvironment", h.PublishEnvironment)
}
