package model

import "time"

// Module belongs to one tool and owns module versions.
type Module struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	ModuleID     string    `gorm:"column:module_id;type:varchar(36);uniqueIndex:uk_module_id" json:"moduleId"`
	Name         string    `gorm:"column:name;type:varchar(255);uniqueIndex:uk_module_name;not null" json:"name"`
	ToolID       string    `gorm:"column:tool_id;type:varchar(36);index:idx_module_tool;not null" json:"toolId"`
	Informations string    `gorm:"column:informations;type:text" json:"informations,omitempty"`
	Vendor       string    `gorm:"column:vendor;type:varchar(255)" json:"vendor,omitempty"`
}

// TableName overrides gorm to use module table.
func (Module) TableName() string {
	return "module"
}

// ModuleVersion is a released version of a module, unique per (module_id, version).
type ModuleVersion struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	CreatedAt       time.Time `json:"creationDate"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
	ModuleVersionID string    `gorm:"column:module_version_id;type:varchar(36);uniqueIndex:uk_module_version_id" json:"moduleVersionId"`
	ModuleID        string    `gorm:"column:module_id;type:varchar(36);uniqueIndex:uk_module_version,priority:1;index:idx_module_version_module;not null" json:"moduleId"`
	Version         string    `gorm:"column:version;type:varchar(128);uniqueIndex:uk_module_version,priority:2;not null" json:"version"`
	Location        string    `gorm:"column:location;type:text" json:"location,omitempty"`
	Informations    string    `gorm:"column:informations;type:text" json:"informations,omitempty"`
}

// TableName overrides gorm to use module_version table.
func (ModuleVersion) TableName() string {
	return "module_version"
}
