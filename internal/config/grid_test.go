package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/grid"
	"dungeon-inventory/internal/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const validGrid = `
drop_in: {row: 0, col: 0, width: 8, height: 2}
inventory: {row: 2, col: 0, width: 8, height: 6}
crafting: {row: 0, col: 10, width: 3, height: 3}
equipped:
  coords: {row: 4, col: 10, width: 4, height: 5}
  slots:
    head: {row: 0, col: 1, width: 2, height: 1}
    body: {row: 1, col: 1, width: 2, height: 2}
    feet: {row: 4, col: 1, width: 2, height: 1}
    main_hand: {row: 1, col: 0, width: 1, height: 2}
    off_hand: {row: 1, col: 3, width: 1, height: 2}
`

var validGridConfig = GridConfig{
	DropIn:    grid.Region{Row: 0, Col: 0, Width: 8, Height: 2},
	Inventory: grid.Region{Row: 2, Col: 0, Width: 8, Height: 6},
	Crafting:  grid.Region{Row: 0, Col: 10, Width: 3, Height: 3},
	Equipped: EquipmentGrid{
		Coords: grid.Region{Row: 4, Col: 10, Width: 4, Height: 5},
		Slots: map[component.EquipmentSlot]grid.Region{
			component.SlotHead:     {Row: 0, Col: 1, Width: 2, Height: 1},
			component.SlotBody:     {Row: 1, Col: 1, Width: 2, Height: 2},
			component.SlotFeet:     {Row: 4, Col: 1, Width: 2, Height: 1},
			component.SlotMainHand: {Row: 1, Col: 0, Width: 1, Height: 2},
			component.SlotOffHand:  {Row: 1, Col: 3, Width: 1, Height: 2},
		},
	},
}

// writeSources lays out base/default and base/override with the given grid
// files; an empty string leaves that file absent.
func writeSources(t *testing.T, defaultGrid, overrideGrid string) Paths {
	t.Helper()
	p := ResolvePaths(t.TempDir())
	require.NoError(t, os.MkdirAll(p.Default, 0o755))
	require.NoError(t, os.MkdirAll(p.Override, 0o755))
	if defaultGrid != "" {
		require.NoError(t, os.WriteFile(filepath.Join(p.Default, GridFile), []byte(defaultGrid), 0o644))
	}
	if overrideGrid != "" {
		require.NoError(t, os.WriteFile(filepath.Join(p.Override, GridFile), []byte(overrideGrid), 0o644))
	}
	return p
}

func TestLoadGridDefaultSourceRoundTrip(t *testing.T) {
	p := writeSources(t, validGrid, "")
	logger, rec := testutil.NewLogRecorder()

	got := LoadGrid(p, logger)

	if diff := cmp.Diff(validGridConfig, got); diff != "" {
		t.Fatalf("LoadGrid mismatch (-want +got):\n%s", diff)
	}
	require.Zero(t, rec.Count(slog.LevelError))
	require.Zero(t, rec.Count(slog.LevelWarn))
}

func TestLoadGridPrefersOverride(t *testing.T) {
	override := `
drop_in: {row: 0, col: 0, width: 4, height: 4}
inventory: {row: 0, col: 0, width: 1, height: 1}
crafting: {row: 0, col: 0, width: 0, height: 0}
equipped:
  coords: {row: 0, col: 0, width: 0, height: 0}
  slots: {}
`
	p := writeSources(t, validGrid, override)
	logger, rec := testutil.NewLogRecorder()

	got := LoadGrid(p, logger)

	require.Equal(t, grid.Region{Width: 4, Height: 4}, got.DropIn)
	require.Equal(t, grid.Region{Width: 1, Height: 1}, got.Inventory)
	require.Empty(t, got.Equipped.Slots)
	require.Zero(t, rec.Count(slog.LevelError))
}

func TestLoadGridInvalidOverrideSkipsDefault(t *testing.T) {
	p := writeSources(t, validGrid, "drop_in: [this is not a region")
	logger, rec := testutil.NewLogRecorder()

	got := LoadGrid(p, logger)

	if diff := cmp.Diff(GridConfig{}, got); diff != "" {
		t.Fatalf("invalid override must yield the built-in default (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, rec.Count(slog.LevelError))
	records := rec.Records()
	require.Equal(t, filepath.Join(p.Override, GridFile), records[0].Attrs["path"])
	require.NotNil(t, records[0].Attrs["error"])
}

func TestLoadGridMissingSourcesUseBuiltin(t *testing.T) {
	p := writeSources(t, "", "")
	logger, rec := testutil.NewLogRecorder()

	got := LoadGrid(p, logger)

	require.Equal(t, GridConfig{}, got)
	require.Equal(t, 1, rec.Count(slog.LevelError))
	require.Equal(t, filepath.Join(p.Default, GridFile), rec.Records()[0].Attrs["path"])
}

func TestLoadGridInvalidDefaultUsesBuiltin(t *testing.T) {
	p := writeSources(t, validGrid+"\nextra_panel: {row: 0, col: 0, width: 1, height: 1}\n", "")
	logger, rec := testutil.NewLogRecorder()

	require.Equal(t, GridConfig{}, LoadGrid(p, logger))
	require.Equal(t, 1, rec.Count(slog.LevelError))
}

func TestReadGridStrictSchema(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty file", ""},
		{"unknown top-level field", validGrid + "backpack: {row: 0, col: 0, width: 1, height: 1}\n"},
		{"unknown region field", `
drop_in: {row: 0, col: 0, width: 1, height: 1, depth: 3}
inventory: {row: 0, col: 0, width: 1, height: 1}
crafting: {row: 0, col: 0, width: 1, height: 1}
equipped: {coords: {row: 0, col: 0, width: 1, height: 1}, slots: {}}
`},
		{"unknown slot", `
drop_in: {row: 0, col: 0, width: 1, height: 1}
inventory: {row: 0, col: 0, width: 1, height: 1}
crafting: {row: 0, col: 0, width: 1, height: 1}
equipped: {coords: {row: 0, col: 0, width: 1, height: 1}, slots: {tail: {row: 0, col: 0, width: 1, height: 1}}}
`},
		{"negative cell", `
drop_in: {row: -1, col: 0, width: 1, height: 1}
inventory: {row: 0, col: 0, width: 1, height: 1}
crafting: {row: 0, col: 0, width: 1, height: 1}
equipped: {coords: {row: 0, col: 0, width: 1, height: 1}, slots: {}}
`},
		{"missing grid", `
drop_in: {row: 0, col: 0, width: 1, height: 1}
inventory: {row: 0, col: 0, width: 1, height: 1}
equipped: {coords: {row: 0, col: 0, width: 1, height: 1}, slots: {}}
`},
		{"missing region field", `
drop_in: {row: 0, col: 0, width: 1}
inventory: {row: 0, col: 0, width: 1, height: 1}
crafting: {row: 0, col: 0, width: 1, height: 1}
equipped: {coords: {row: 0, col: 0, width: 1, height: 1}, slots: {}}
`},
		{"fractional cell", `
drop_in: {row: 0.5, col: 0, width: 1, height: 1}
inventory: {row: 0, col: 0, width: 1, height: 1}
crafting: {row: 0, col: 0, width: 1, height: 1}
equipped: {coords: {row: 0, col: 0, width: 1, height: 1}, slots: {}}
`},
		{"two documents", validGrid + "---\n" + validGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), GridFile)
			require.NoError(t, os.WriteFile(path, []byte(tc.doc), 0o644))

			_, err := ReadGrid(path)
			require.Error(t, err)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "want *LoadError, got %T", err)
			require.Equal(t, path, loadErr.Path)
		})
	}
}

func TestReadGridMissingFileIsNotExist(t *testing.T) {
	_, err := ReadGrid(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteGridRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", GridFile)
	require.NoError(t, WriteGrid(path, validGridConfig))

	got, err := ReadGrid(path)
	require.NoError(t, err)
	if diff := cmp.Diff(validGridConfig, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaAcceptsEverySlotName(t *testing.T) {
	cfg := GridConfig{Equipped: EquipmentGrid{Slots: map[component.EquipmentSlot]grid.Region{}}}
	for i, s := range component.EquipmentSlots {
		cfg.Equipped.Slots[s] = grid.Region{Row: i, Width: 1, Height: 1}
	}
	path := filepath.Join(t.TempDir(), GridFile)
	require.NoError(t, WriteGrid(path, cfg))
	_, err := ReadGrid(path)
	require.NoError(t, err)
}

func TestLoadGridWarnsAboutSlotsOutsidePanel(t *testing.T) {
	doc := `
drop_in: {row: 0, col: 0, width: 1, height: 1}
inventory: {row: 0, col: 0, width: 1, height: 1}
crafting: {row: 0, col: 0, width: 1, height: 1}
equipped:
  coords: {row: 0, col: 0, width: 2, height: 2}
  slots:
    head: {row: 0, col: 0, width: 1, height: 1}
    feet: {row: 1, col: 1, width: 2, height: 1}
`
	p := writeSources(t, doc, "")
	logger, rec := testutil.NewLogRecorder()

	cfg := LoadGrid(p, logger)

	require.Len(t, cfg.Equipped.Slots, 2, "out-of-bounds slots are kept")
	require.Zero(t, rec.Count(slog.LevelError))
	require.Equal(t, 1, rec.Count(slog.LevelWarn))
	require.Equal(t, "feet", rec.Records()[0].Attrs["slot"])
}

func TestPathsFromEnv(t *testing.T) {
	t.Setenv(EnvConfigDir, "/srv/dungeon")
	require.Equal(t, Paths{Default: "/srv/dungeon/default", Override: "/srv/dungeon/override"}, PathsFromEnv())

	t.Setenv(EnvConfigDir, "")
	require.Equal(t, ResolvePaths(DefaultBaseDir), PathsFromEnv())
}

func TestShippedDefaultsLoadCleanly(t *testing.T) {
	p := Paths{Default: filepath.Join("..", "..", "config", "default")}
	logger, rec := testutil.NewLogRecorder()

	cfg := LoadGrid(p, logger)
	texts := LoadTexts(p, nil, logger)

	require.Empty(t, rec.Records(), "shipped config must load without warnings")
	require.False(t, cfg.DropIn.Empty())
	require.False(t, cfg.Inventory.Empty())
	require.Len(t, cfg.Equipped.Slots, len(component.EquipmentSlots))
	require.NotEmpty(t, texts)
}
