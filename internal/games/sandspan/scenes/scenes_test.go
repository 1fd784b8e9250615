package scenes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/scenes"
)

func TestLoaderLoadAllSkipsInvalidFiles(t *testing.T) {
	loader := scenes.NewLoader("testdata")

	all, err := loader.LoadAll()
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, "small", all[0].ID)
	assert.Equal(t, "tower", all[1].ID)
	assert.Equal(t, "tower", all[1].Name, "name defaults to the id")
}

func TestLoaderMissingRoot(t *testing.T) {
	all, err := scenes.NewLoader(t.TempDir() + "/nope").LoadAll()

	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSceneGridAlignsLayoutToBottom(t *testing.T) {
	sc, err := scenes.NewLoader("testdata").LoadByID("small")
	require.NoError(t, err)

	g, err := sc.Grid(core.DefaultPalette())
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 4, g.Cols)
	assert.False(t, g.Get(core.C(0, 0)).Filled)
	assert.Equal(t, core.FilledCell(core.Orange), g.Get(core.C(1, 0)))
	assert.Equal(t, core.FilledCell(core.Cyan), g.Get(core.C(2, 3)))
}

func TestSceneApply(t *testing.T) {
	sc, err := scenes.NewLoader("testdata").LoadByID("tower")
	require.NoError(t, err)

	s, err := core.New(core.DefaultConfig(), core.Rand(fixed{}))
	require.NoError(t, err)

	require.NoError(t, sc.Apply(s))

	assert.Equal(t, 6, s.Cols())
	assert.Equal(t, 8, s.Rows())
	assert.Equal(t, 16, s.Grid().FilledCount())
	assert.Equal(t, core.FilledCell(core.Yellow), s.Cell(0, 1))
	assert.False(t, s.Cell(0, 0).Filled)
}

func TestLoadByIDNotFound(t *testing.T) {
	_, err := scenes.NewLoader("testdata").LoadByID("missing")

	assert.ErrorIs(t, err, scenes.ErrSceneNotFound)
}

func TestBundledScenesAreValid(t *testing.T) {
	all, err := scenes.Bundled().LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 3)

	for _, sc := range all {
		g, err := sc.Grid(core.DefaultPalette())
		require.NoError(t, err, sc.ID)
		_, spans := core.FindSpan(g)
		assert.False(t, spans, "%s must not start with a span", sc.ID)
	}
}

func TestCatalogUserOverridesBundled(t *testing.T) {
	all, err := scenes.Catalog("testdata")
	require.NoError(t, err)

	ids := make([]string, len(all))
	for i, sc := range all {
		ids[i] = sc.ID
	}
	assert.Equal(t, []string{"near-span", "small", "staircase", "tetris-rain", "tower"}, ids)

	sc, err := scenes.Find("", "near-span")
	require.NoError(t, err)
	assert.Equal(t, "Near Span", sc.Name)

	_, err = scenes.Find("testdata", "nothing")
	assert.ErrorIs(t, err, scenes.ErrSceneNotFound)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"bad yaml", "id: [unterminated"},
		{"missing id", "size: {cols: 4, rows: 4}"},
		{"bad size", "id: x\nsize: {cols: 4, rows: 0}"},
		{"bad palette", "id: x\nsize: {cols: 4, rows: 4}\npalette: [mauve]"},
		{"unknown shape", "id: x\nsize: {cols: 8, rows: 8}\nshapes: [{shape: Q, row: 0, col: 4, color: red}]"},
		{"bad shape color", "id: x\nsize: {cols: 8, rows: 8}\nshapes: [{shape: O, row: 0, col: 4, color: mauve}]"},
		{"shape off grid", "id: x\nsize: {cols: 4, rows: 4}\nshapes: [{shape: I, row: 0, col: 2, color: red}]"},
		{"layout too tall", "id: x\nsize: {cols: 2, rows: 1}\nlayout: ['..', '00']"},
		{"layout too wide", "id: x\nsize: {cols: 2, rows: 2}\nlayout: ['000']"},
		{"layout bad digit", "id: x\nsize: {cols: 2, rows: 2}\nlayout: ['09']"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenes.Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

type fixed struct{}

func (fixed) Intn(int) int { return 0 }

func TestPaletteForShortSessionPalette(t *testing.T) {
	sc, err := scenes.Bundled().LoadByID("staircase")
	require.NoError(t, err)
	short := core.DefaultPalette()[:3]

	assert.Equal(t, 5, sc.ColorsNeeded())
	assert.Equal(t, core.DefaultPalette(), sc.PaletteFor(short))

	g, err := sc.Grid(short)
	require.NoError(t, err)
	assert.Equal(t, core.FilledCell(core.Magenta), g.Get(core.C(29, 19)))
}

func TestPaletteForKeepsCoveringPalette(t *testing.T) {
	sc, err := scenes.Bundled().LoadByID("near-span")
	require.NoError(t, err)
	short := core.DefaultPalette()[:3]

	assert.Equal(t, 3, sc.ColorsNeeded())
	assert.Equal(t, short, sc.PaletteFor(short))
}
