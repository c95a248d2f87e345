package service

import "github.com/yi-nology/tool_inventory/pkg/errno"

var (
	ErrToolNotFound          = errno.NotFound("Tool not found")
	ErrToolExists            = errno.Conflict("Tool already exists")
	ErrToolVersionNotFound   = errno.NotFound("Tool version not found")
	ErrToolVersionExists     = errno.Conflict("Tool version already exists")
	ErrModuleNotFound        = errno.NotFound("Module not found")
	ErrModuleExists          = errno.Conflict("Module already exists")
	ErrModuleVersionNotFound = errno.NotFound("Module version not found")
	ErrModuleVersionExists   = errno.Conflict("Module version already exists")
	ErrEnvironmentNotFound   = errno.NotFound("Environment not found")
	ErrEnvironmentExists     = errno.Conflict("Environment already exists")

	// ErrToolVersionParentMissing is returned when a tool version references an unknown tool.
	// Module creation reports the same situation as ErrToolNotFound.
	ErrToolVersionParentMissing = errno.Conflict("Tool does not exist")

	ErrPageOutOfRange = errno.BadRequest("Page out of range")

	ErrToolVersionAlreadyInEnvironment   = errno.BadRequest("Tool version already in environment")
	ErrToolVersionNotInEnvironment       = errno.BadRequest("Tool version not in environment")
	ErrModuleVersionAlreadyInEnvironment = errno.BadRequest("Module version already in environment")
	ErrModuleVersionNotInEnvironment     = errno.BadRequest("Module version not in environment")
)
