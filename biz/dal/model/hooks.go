package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// External keys are assigned on insert when the caller left them empty.

func (t *Tool) BeforeCreate(*gorm.DB) error {
	if t.ToolID == "" {
		t.ToolID = uuid.NewString()
	}
	return nil
}

func (v *ToolVersion) BeforeCreate(*gorm.DB) error {
	if v.ToolVersionID == "" {
		v.ToolVersionID = uuid.NewString()
	}
	return nil
}

func (m *Module) BeforeCreate(*gorm.DB) error {
	if m.ModuleID == "" {
		m.ModuleID = uuid.NewString()
	}
	return nil
}

func (v *ModuleVersion) BeforeCreate(*gorm.DB) error {
	if v.ModuleVersionID == "" {
		v.ModuleVersionID = uuid.NewString()
	}
	return nil
}

func (e *Environment) BeforeCreate(*gorm.DB) error {
	if e.EnvironmentID == "" {
		e.EnvironmentID = uuid.NewString()
	}
	return nil
}
