package api

// EnvironmentManifest is an environment with its version references resolved.
type EnvironmentManifest struct {
	Name         string           `json:"name" yaml:"name"`
	Informations string           `json:"informations,omitempty" yaml:"informations,omitempty"`
	Tools        []ManifestEntry  `json:"tools" yaml:"tools"`
	Modules      []ManifestEntry  `json:"modules" yaml:"modules"`
	Missing      *ManifestMissing `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// ManifestEntry is one resolved tool or module version.
type ManifestEntry struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Version  string `json:"version" yaml:"version"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// ManifestMissing lists references whose records no longer exist.
type ManifestMissing struct {
	Tools   []string `json:"tools,omitempty" yaml:"tools,omitempty"`
	Modules []string `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// PublishResult locates a published manifest in storage.
type PublishResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
