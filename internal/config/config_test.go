package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinLozano-bot/arcadectl/internal/env"
)

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalogConfig_ParsesMachines(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `catalog: showroom
machines:
  - name: racer-one
    type: Racing
    material: aluminium
    color: silver
    videogames:
      - name: Night Drift
        category: racing
        price: 200
        year: 2020
        highDefinition: true
  - name: corner-cabinet
    type: ClassicalArcade
    material: wood
`)

	cfg, ctx, err := LoadCatalogConfig(path, LoadOptions{})

	require.NoError(t, err)
	assert.Equal(t, "showroom", cfg.Catalog)
	assert.Equal(t, "showroom", ctx.Catalog)
	assert.Equal(t, dir, ctx.BaseDir)
	require.Len(t, cfg.Machines, 2)

	racer := cfg.Machines[0]
	assert.Equal(t, "racer-one", racer.Name)
	assert.Equal(t, "Racing", racer.Type)
	assert.Equal(t, "aluminium", racer.Material)
	assert.Equal(t, "silver", racer.Color)
	require.Len(t, racer.Videogames, 1)
	assert.Equal(t, "Night Drift", racer.Videogames[0].Name)
	assert.Equal(t, 200.0, racer.Videogames[0].Price)
	assert.True(t, racer.Videogames[0].HighDefinition)

	assert.Empty(t, cfg.Machines[1].Videogames)
}

func TestLoadCatalogConfig_RendersEnvFileVariables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.env"), []byte("CABINET_COLOR=blue\n"), 0o644))
	path := writeCatalog(t, dir, `catalog: showroom
envFiles:
  - catalog.env
machines:
  - name: corner-cabinet
    type: ClassicalArcade
    material: wood
    color: '{{ envOr "CABINET_COLOR" "red" }}'
`)

	cfg, _, err := LoadCatalogConfig(path, LoadOptions{})

	require.NoError(t, err)
	require.Len(t, cfg.Machines, 1)
	assert.Equal(t, "blue", cfg.Machines[0].Color)
}

func TestLoadCatalogConfig_UserVarsOverrideEnvFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.env"), []byte("CABINET_COLOR=blue\n"), 0o644))
	path := writeCatalog(t, dir, `catalog: showroom
envFiles:
  - catalog.env
machines:
  - name: corner-cabinet
    type: ClassicalArcade
    material: wood
    color: '{{ envOr "CABINET_COLOR" "red" }}'
`)

	cfg, _, err := LoadCatalogConfig(path, LoadOptions{
		UserVars: env.Vars{"CABINET_COLOR": "green"},
	})

	require.NoError(t, err)
	assert.Equal(t, "green", cfg.Machines[0].Color)
}

func TestLoadCatalogConfig_VarFileVariables(t *testing.T) {
	dir := t.TempDir()
	varFile := filepath.Join(dir, "vars.yaml")
	require.NoError(t, os.WriteFile(varFile, []byte("VENUE: midtown\n"), 0o644))
	path := writeCatalog(t, dir, `catalog: '{{ envOr "VENUE" "downtown" }}'
machines:
  - name: corner-cabinet
    type: ClassicalArcade
    material: wood
`)

	cfg, _, err := LoadCatalogConfig(path, LoadOptions{VarFiles: []string{varFile}})

	require.NoError(t, err)
	assert.Equal(t, "midtown", cfg.Catalog)
}

func TestLoadCatalogConfig_TemplateHelpers(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `catalog: showroom
machines:
  - name: '{{ slug "Main Hall Racer" }}'
    type: Racing
    material: '{{ toLower "ALUMINIUM" }}'
    color: '{{ default "" "black" }}'
`)

	cfg, _, err := LoadCatalogConfig(path, LoadOptions{})

	require.NoError(t, err)
	machine := cfg.Machines[0]
	assert.Equal(t, "main-hall-racer", machine.Name)
	assert.Equal(t, "aluminium", machine.Material)
	assert.Equal(t, "black", machine.Color)
}

func TestLoadCatalogConfig_DuplicateNamesRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `catalog: showroom
machines:
  - name: twin
    type: Racing
    material: wood
  - name: twin
    type: Shooting
    material: wood
`)

	_, _, err := LoadCatalogConfig(path, LoadOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate machine name "twin"`)
}

func TestLoadCatalogConfig_MissingFileFails(t *testing.T) {
	_, _, err := LoadCatalogConfig(filepath.Join(t.TempDir(), "absent.yaml"), LoadOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestCatalogConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     CatalogConfig
		wantErr string
	}{
		{
			name: "missing machine name",
			cfg: CatalogConfig{Machines: []MachineSpec{
				{Type: "Racing", Material: "wood"},
			}},
			wantErr: "name is required",
		},
		{
			name: "missing machine type",
			cfg: CatalogConfig{Machines: []MachineSpec{
				{Name: "racer-one", Material: "wood"},
			}},
			wantErr: "type is required",
		},
		{
			name: "missing videogame name",
			cfg: CatalogConfig{Machines: []MachineSpec{
				{Name: "racer-one", Type: "Racing", Material: "wood", Videogames: []VideogameSpec{{Price: 10}}},
			}},
			wantErr: "videogame 0: name is required",
		},
		{
			name: "valid",
			cfg: CatalogConfig{Machines: []MachineSpec{
				{Name: "racer-one", Type: "Racing", Material: "wood"},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
