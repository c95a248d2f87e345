package model

import "time"

// Tool is a catalog item that owns versions and modules.
type Tool struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	ToolID    string    `gorm:"column:tool_id;type:varchar(36);uniqueIndex:uk_tool_id" json:"toolId"`
	Name      string    `gorm:"column:name;type:varchar(255);uniqueIndex:uk_tool_name;not null" json:"name"`
	Vendor    string    `gorm:"column:vendor;type:varchar(255)" json:"vendor,omitempty"`
}

// TableName overrides gorm to use tool table.
func (Tool) TableName() string {
	return "tool"
}

// ToolVersion is a released version of a tool, unique per (tool_id, version).
type ToolVersion struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	CreatedAt     time.Time `json:"creationDate"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
	ToolVersionID string    `gorm:"column:tool_version_id;type:varchar(36);uniqueIndex:uk_tool_version_id" json:"toolVersionId"`
	ToolID        string    `gorm:"column:tool_id;type:varchar(36);uniqueIndex:uk_tool_version,priority:1;index:idx_tool_version_tool;not null" json:"toolId"`
	Version       string    `gorm:"column:version;type:varchar(128);uniqueIndex:uk_tool_version,priority:2;not null" json:"version"`
	Location      string    `gorm:"column:location;type:text" json:"location,omitempty"`
	Informations  string    `gorm:"column:informations;type:text" json:"informations,omitempty"`
}

// TableName overrides gorm to use tool_version table.
func (ToolVersion) TableName() string {
	return "tool_version"
}
