package api

// Requests accept their fields from either the JSON body or the query string.
// Optional update fields are pointers: nil means the field was not supplied.

type PageRequest struct {
	Page    int `json:"page" query:"page"`
	PerPage int `json:"perPage" query:"perPage"`
}

type CreateToolRequest struct {
	Name   string `json:"name" query:"name"`
	Vendor string `json:"vendor" query:"vendor"`
}

type ToolRequest struct {
	ToolID string `json:"toolId" query:"toolId"`
}

type UpdateToolRequest struct {
	ToolID string  `json:"toolId" query:"toolId"`
	Vendor *string `json:"vendor,omitempty" query:"vendor"`
}

type CreateToolVersionRequest struct {
	ToolID       string `json:"toolId" query:"toolId"`
	Version      string `json:"version" query:"version"`
	Location     string `json:"location" query:"location"`
	Informations string `json:"informations" query:"informations"`
}

type ToolVersionRequest struct {
	ToolVersionID string `json:"toolVersionId" query:"toolVersionId"`
}

type UpdateToolVersionRequest struct {
	ToolVersionID string  `json:"toolVersionId" query:"toolVersionId"`
	Location      *string `json:"location,omitempty" query:"location"`
	Informations  *string `json:"informations,omitempty" query:"informations"`
}

type ToolVersionPageRequest struct {
	Page    int    `json:"page" query:"page"`
	PerPage int    `json:"perPage" query:"perPage"`
	ToolID  string `json:"toolId" query:"toolId"`
}

type CreateModuleRequest struct {
	Name         string `json:"name" query:"name"`
	ToolID       string `json:"toolId" query:"toolId"`
	Informations string `json:"informations" query:"informations"`
	Vendor       string `json:"vendor" query:"vendor"`
}

type ModuleRequest struct {
	ModuleID string `json:"moduleId" query:"moduleId"`
}

type UpdateModuleRequest struct {
	ModuleID     string  `json:"moduleId" query:"moduleId"`
	Informations *string `json:"informations,omitempty" query:"informations"`
	Vendor       *string `json:"vendor,omitempty" query:"vendor"`
}

type ModulePageRequest struct {
	Page    int    `json:"page" query:"page"`
	PerPage int    `json:"perPage" query:"perPage"`
	ToolID  string `json:"toolId" query:"toolId"`
}

type CreateModuleVersionRequest struct {
	ModuleID     string `json:"moduleId" query:"moduleId"`
	Version      string `json:"version" query:"version"`
	Location     string `json:"location" query:"location"`
	Informations string `json:"informations" query:"informations"`
}

type ModuleVersionRequest struct {
	ModuleVersionID string `json:"moduleVersionId" query:"moduleVersionId"`
}

type UpdateModuleVersionRequest struct {
	ModuleVersionID string  `json:"moduleVersionId" query:"moduleVersionId"`
	Location        *string `json:"location,omitempty" query:"location"`
	Informations    *string `json:"informations,omitempty" query:"informations"`
}

type ModuleVersionPageRequest struct {
	Page     int    `json:"page" query:"page"`
	PerPage  int    `json:"perPage" query:"perPage"`
	ModuleID string `json:"moduleId" query:"moduleId"`
}

type CreateEnvironmentRequest struct {
	Name         string `json:"name" query:"name"`
	Informations string `json:"informations" query:"informations"`
}

type EnvironmentRequest struct {
	EnvironmentID string `json:"environmentId" query:"environmentId"`
}

type EnvironmentByNameRequest struct {
	Name string `json:"name" query:"name"`
}

type UpdateEnvironmentRequest struct {
	EnvironmentID string  `json:"environmentId" query:"environmentId"`
	Informations  *string `json:"informations,omitempty" query:"informations"`
}

type EnvironmentToolVersionRequest struct {
	EnvironmentID string `json:"environmentId" query:"environmentId"`
	ToolVersionID string `json:"toolVersionId" query:"toolVersionId"`
}

type EnvironmentModuleVersionRequest struct {
	EnvironmentID   string `json:"environmentId" query:"environmentId"`
	ModuleVersionID string `json:"moduleVersionId" query:"moduleVersionId"`
}
