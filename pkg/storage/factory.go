package storage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yi-nology/tool_inventory/pkg/storage/local"
	"github.com/yi-nology/tool_inventory/pkg/storage/s3"
)

// Backend type names accepted in storage.type.
const (
	TypeLocal = "local"
	TypeS3    = "s3"
)

// Config selects and configures the manifest storage backend.
type Config struct {
	Type  string      `yaml:"type"`
	Local LocalConfig `yaml:"local"`
	S3    S3Config    `yaml:"s3"`
}

type LocalConfig struct {
	BasePath string `yaml:"base_path"`
}

// S3Config also covers Aliyun OSS and MinIO through Endpoint and PathStyle.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	PathStyle bool   `yaml:"path_style"`
	// Prefix is prepended to every object key, letting several deployments share a bucket.
	Prefix string `yaml:"prefix"`
	// URLMode is "presigned" or "proxy".
	URLMode string `yaml:"url_mode"`
}

var backends = map[string]func(Config) (Storage, error){
	TypeLocal: func(cfg Config) (Storage, error) {
		return local.New(cfg.Local.BasePath, ProxyPath)
	},
	TypeS3: func(cfg Config) (Storage, error) {
		return s3.New(s3.Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PathStyle: cfg.S3.PathStyle,
			Prefix:    cfg.S3.Prefix,
			URLMode:   cfg.S3.URLMode,
			ProxyPath: ProxyPath,
		})
	},
}

// New builds the backend named by cfg.Type. An empty type means local.
func New(cfg Config) (Storage, error) {
	typ := strings.ToLower(strings.TrimSpace(cfg.Type))
	if typ == "" {
		typ = TypeLocal
	}
	build, ok := backends[typ]
	if !ok {
		names := make([]string, 0, len(backends))
		for name := range backends {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unsupported storage type %q (want one of %s)", cfg.Type, strings.Join(names, ", "))
	}
	return build(cfg)
}

// DefaultConfig keeps manifests on the local disk under data/manifests.
func DefaultConfig() Config {
	return Config{
		Type:  TypeLocal,
		Local: LocalConfig{BasePath: "data/manifests"},
		S3:    S3Config{Region: "us-east-1", URLMode: s3.URLModePresigned},
	}
}
