package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("KS Fala")

	assert.Equal(t, "KS Fala", cfg.Club.Name)
	assert.Equal(t, "PLN", cfg.Club.HomeCurrency)
	assert.Equal(t, "https://api.nbp.pl", cfg.Rates.BaseURL)
	assert.Equal(t, 7, cfg.Rates.LookbackDays)
	assert.Equal(t, "data", cfg.Data.Dir)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skarbnik.yaml")

	cfg := Default("KS Fala")
	cfg.Rates.LookbackDays = 10
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skarbnik.yaml")
	require.NoError(t, os.WriteFile(path, []byte("club: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
