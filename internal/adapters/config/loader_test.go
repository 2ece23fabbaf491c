package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/carve/internal/adapters/config"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	cfg, err := newLoader(t).Load(filepath.Join(t.TempDir(), "carve.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "carve.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
version: "1"
root: vendor/rust
out: /tmp/extracted
namespace:
  prefix: tool
  replace: [host]
  separator: "-"
features:
  directive: "#![feature(internal)]"
  packages: [host_session]
`)

	cfg, err := newLoader(t).Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "vendor", "rust"), cfg.Root, "relative to the config file")
	assert.Equal(t, "/tmp/extracted", cfg.Out)
	assert.Equal(t, domain.Namespace{Prefix: "tool", Replace: []string{"host"}, Separator: "-"}, cfg.Namespace)
	assert.Equal(t, domain.FeatureSet{
		Directive: "#![feature(internal)]",
		Packages:  []string{"host_session"},
	}, cfg.Features)
}

func TestLoad_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
features:
  packages: [rustc_span]
`)

	cfg, err := newLoader(t).Load(path, true)
	require.NoError(t, err)

	defaults := domain.DefaultConfig()
	assert.Equal(t, defaults.Root, cfg.Root)
	assert.Equal(t, defaults.Out, cfg.Out)
	assert.Equal(t, defaults.Namespace, cfg.Namespace)
	assert.Equal(t, defaults.Features.Directive, cfg.Features.Directive)
	assert.Equal(t, []string{"rustc_span"}, cfg.Features.Packages)
}

func TestLoad_EmptyListDisablesInjection(t *testing.T) {
	path := writeConfig(t, "features:\n  packages: []\n")

	cfg, err := newLoader(t).Load(path, true)
	require.NoError(t, err)
	assert.Empty(t, cfg.Features.Packages)
	assert.False(t, cfg.Features.Applies("rustc_session"))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "namespace: [unterminated")

	_, err := newLoader(t).Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoad_EmptyPrefix(t *testing.T) {
	path := writeConfig(t, "namespace:\n  prefix: \"\"\n")

	_, err := newLoader(t).Load(path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidNamespace))
}

func TestParse_RelativeToDir(t *testing.T) {
	cfg, err := config.Parse([]byte("root: src\nout: out\n"), "/work")
	require.NoError(t, err)
	assert.Equal(t, "/work/src", cfg.Root)
	assert.Equal(t, "/work/out", cfg.Out)
}
