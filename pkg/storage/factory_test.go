package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	store, err := New(Config{Local: LocalConfig{BasePath: t.TempDir()}})
	require.NoError(t, err)
	require.Equal(t, TypeLocal, store.Type())

	store, err = New(Config{Type: " LOCAL ", Local: LocalConfig{BasePath: t.TempDir()}})
	require.NoError(t, err)
	require.Equal(t, TypeLocal, store.Type())

	_, err = New(Config{Type: "ftp"})
	require.ErrorContains(t, err, "local, s3")

	_, err = New(Config{Type: TypeS3})
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, TypeLocal, cfg.Type)
	require.Equal(t, "data/manifests", cfg.Local.BasePath)
	require.Equal(t, "/manifests/a/b.yaml", ProxyPath("a/b.yaml"))
}
