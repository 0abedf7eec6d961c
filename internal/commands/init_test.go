package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarbnik-dev/skarbnik/internal/config"
	"github.com/skarbnik-dev/skarbnik/internal/store"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "KS Fala"))

	cfg, err := config.Load(filepath.Join(dir, configFile))
	require.NoError(t, err)
	assert.Equal(t, "KS Fala", cfg.Club.Name)

	// Data dir exists with an empty ledger and the seeded category master.
	dataDir := filepath.Join(dir, cfg.Data.Dir)
	_, err = os.Stat(filepath.Join(dataDir, "ledger.csv"))
	require.NoError(t, err)

	svc := store.NewService(dataDir)
	cats, err := svc.Categories()
	require.NoError(t, err)
	assert.Len(t, cats, len(store.DefaultCategories()))

	txns, err := svc.All()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestRunInitIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "KS Fala"))
	require.NoError(t, runInit(dir, "KS Fala"))

	cats, err := store.NewService(filepath.Join(dir, "data")).Categories()
	require.NoError(t, err)
	assert.Len(t, cats, len(store.DefaultCategories()), "re-init must not duplicate the seed")
}
