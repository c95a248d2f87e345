// Package api provides API request/response models for the inventory catalog.
package api

import "time"

// Tool is the API view of a tool.
type Tool struct {
	ToolID string `json:"toolId"`
	Name   string `json:"name"`
	Vendor string `json:"vendor,omitempty"`
}

// ToolVersion is the API view of a tool version.
type ToolVersion struct {
	ToolVersionID string    `json:"toolVersionId"`
	ToolID        string    `json:"toolId"`
	Version       string    `json:"version"`
	Location      string    `json:"location,omitempty"`
	Informations  string    `json:"informations,omitempty"`
	CreationDate  time.Time `json:"creationDate"`
}

// Module is the API view of a module.
type Module struct {
	ModuleID     string `json:"moduleId"`
	Name         string `json:"name"`
	ToolID       string `json:"toolId"`
	Informations string `json:"informations,omitempty"`
	Vendor       string `json:"vendor,omitempty"`
}

// ModuleVersion is the API view of a module version.
type ModuleVersion struct {
	ModuleVersionID string    `json:"moduleVersionId"`
	ModuleID        string    `json:"moduleId"`
	Version         string    `json:"version"`
	Location        string    `json:"location,omitempty"`
	Informations    string    `json:"informations,omitempty"`
	CreationDate    time.Time `json:"creationDate"`
}

// Environment is the API view of an environment. Tools and Modules hold
// tool version and module version ids in insertion order.
type Environment struct {
	EnvironmentID string   `json:"environmentId"`
	Name          string   `json:"name"`
	Informations  string   `json:"informations,omitempty"`
	Tools         []string `json:"tools"`
	Modules       []string `json:"modules"`
}

// HasTool reports whether the tool version id is listed.
func (e *Environment) HasTool(toolVersionID string) bool {
	return contains(e.Tools, toolVersionID)
}

// HasModule reports whether the module version id is listed.
func (e *Environment) HasModule(moduleVersionID string) bool {
	return contains(e.Modules, moduleVersionID)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// DeleteResult is returned by delete operations.
type DeleteResult struct {
	ID string `json:"id"`
}

// MessageResponse is the envelope used by mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type ToolPage struct {
	Tools     []*Tool `json:"tools"`
	PageCount int64   `json:"pageCount"`
}

type ToolVersionPage struct {
	ToolVersions []*ToolVersion `json:"toolVersions"`
	PageCount    int64          `json:"pageCount"`
}

type ModulePage struct {
	Modules   []*Module `json:"modules"`
	PageCount int64     `json:"pageCount"`
}

type ModuleVersionPage struct {
	ModuleVersions []*ModuleVersion `json:"moduleVersions"`
	PageCount      int64            `json:"pageCount"`
}

type EnvironmentPage struct {
	Environments []*Environment `json:"environments"`
	PageCount    int64          `json:"pageCount"`
}
