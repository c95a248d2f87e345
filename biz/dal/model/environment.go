package model

import "time"

// Environment is a named collection of tool and module versions, held by reference.
type Environment struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
	EnvironmentID string    `gorm:"column:environment_id;type:varchar(36);uniqueIndex:uk_environment_id" json:"environmentId"`
	Name          string    `gorm:"column:name;type:varchar(255);uniqueIndex:uk_environment_name;not null" json:"name"`
	Informations  string    `gorm:"column:informations;type:text" json:"informations,omitempty"`
}

// TableName overrides gorm to use environment table.
func (Environment) TableName() string {
	return "environment"
}

// EnvironmentToolVersion is one entry of an environment's tool version list.
// Rows are ordered by ID, which keeps the list in insertion order.
type EnvironmentToolVersion struct {
	ID            uint `gorm:"primaryKey"`
	CreatedAt     time.Time
	EnvironmentID string `gorm:"column:environment_id;type:varchar(36);uniqueIndex:uk_env_tool_version,priority:1;not null"`
	ToolVersionID string `gorm:"column:tool_version_id;type:varchar(36);uniqueIndex:uk_env_tool_version,priority:2;not null"`
}

// TableName overrides gorm to use environment_tool_version table.
func (EnvironmentToolVersion) TableName() string {
	return "environment_tool_version"
}

// EnvironmentModuleVersion is one entry of an environment's module version list.
type EnvironmentModuleVersion struct {
	ID              uint `gorm:"primaryKey"`
	CreatedAt       time.Time
	EnvironmentID   string `gorm:"column:environment_id;type:varchar(36);uniqueIndex:uk_env_module_version,priority:1;not null"`
	ModuleVersionID string `gorm:"column:module_version_id;type:varchar(36);uniqueIndex:uk_env_module_version,priority:2;not null"`
}

// TableName overrides gorm to use environment_module_version table.
func (EnvironmentModuleVersion) TableName() string {
	return "environment_module_version"
}

// All lists every model managed by AutoMigrate.
func All() []any {
	return []any{
		&Tool{},
		&ToolVersion{},
		&Module{},
		&ModuleVersion{},
		&Environment{},
		&EnvironmentToolVersion{},
		&EnvironmentModuleVersion{},
	}
}
