package store

import (
	"os"
	"path/filepath"
	"testing"

	"visibilitystack-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeedIsValid(t *testing.T) {
	seed := DefaultSeed()
	require.NoError(t, ValidateSeed(seed))
	assert.Len(t, seed.ICPs, 2)
	assert.Len(t, seed.Competitors, 3)
	assert.Equal(t, "VisibilityStack.ai", seed.Profile.Name)
}

func TestValidateSeedRejectsDuplicateICPIDs(t *testing.T) {
	seed := DefaultSeed()
	seed.ICPs[1].ID = seed.ICPs[0].ID

	err := ValidateSeed(seed)
	var se SeedError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "icp", se.Kind)
	assert.Equal(t, "duplicate id", se.Reason)

	_, err = New(seed)
	assert.Error(t, err)
}

func TestValidateSeedRejectsUnknownTypes(t *testing.T) {
	seed := DefaultSeed()
	seed.ICPs[0].Type = "Government"
	assert.Error(t, ValidateSeed(seed))

	seed = DefaultSeed()
	seed.Competitors[0].Type = "Partner"
	assert.Error(t, ValidateSeed(seed))
}

func TestValidateSeedRejectsNonPositiveIDs(t *testing.T) {
	seed := DefaultSeed()
	seed.Competitors[2].ID = 0
	assert.Error(t, ValidateSeed(seed))
}

func TestParseSeed(t *testing.T) {
	doc := []byte(`
profile:
  name: Acme
  website: https://acme.test
  description: Widgets.
icps:
  - id: 10
    name: Retail
    type: SMB
    description: Shops
competitors:
  - id: 1
    name: Globex
    website: https://globex.test
    type: Direct
`)
	seed, err := ParseSeed(doc)
	require.NoError(t, err)
	assert.Equal(t, model.CompanyProfile{Name: "Acme", Website: "https://acme.test", Description: "Widgets."}, seed.Profile)
	assert.Equal(t, []model.ICP{{ID: 10, Name: "Retail", Type: model.ICPTypeSMB, Description: "Shops"}}, seed.ICPs)
	require.Len(t, seed.Competitors, 1)
	assert.Equal(t, model.CompetitorDirect, seed.Competitors[0].Type)
}

func TestParseSeedRejectsUnknownKeys(t *testing.T) {
	_, err := ParseSeed([]byte("profile:\n  nmae: typo\n"))
	assert.Error(t, err)
}

func TestParseSeedEmptyDocument(t *testing.T) {
	seed, err := ParseSeed(nil)
	require.NoError(t, err)
	assert.Empty(t, seed.ICPs)
}

func TestLoadSeedFile(t *testing.T) {
	seed, err := LoadSeedFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed(), seed)

	p := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(p, []byte("icps:\n  - id: 3\n    name: X\n    type: Startup\n"), 0o600))
	seed, err = LoadSeedFile(p)
	require.NoError(t, err)
	require.Len(t, seed.ICPs, 1)
	assert.Equal(t, model.ICPTypeStartup, seed.ICPs[0].Type)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
