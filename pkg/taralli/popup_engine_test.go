package taralli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowSetsPreviewState(t *testing.T) {
	view := testView()
	key := testKey(100, 2)
	engine := NewPopupLayoutEngine(Options{View: view})

	engine.Show(key, HintModeAccentPriority)
	require.True(t, engine.IsShowingPreview())

	preview := engine.Preview()
	assert.True(t, preview.Visible)
	assert.Equal(t, "a", preview.Label)
	assert.True(t, preview.ShowsMoreHint)
	assert.Equal(t, -preview.Height, preview.YOffset)
	assert.Positive(t, preview.Width)
	assert.Positive(t, preview.Height)
}

func TestShowIgnoresSpaceAndControlCodes(t *testing.T) {
	view := testView()
	engine := NewPopupLayoutEngine(Options{View: view})

	for _, code := range []int32{CodeSpace, 10, 0, -1, CodeSettings} {
		key := testKey(100, 0)
		key.KeyCode = code
		engine.Show(key, HintModeAccentPriority)
		assert.False(t, engine.IsShowingPreview(), "code %d", code)
		assert.False(t, engine.Preview().Visible, "code %d", code)
	}
}

func TestShowWithoutAlternates(t *testing.T) {
	view := testView()
	key := testKey(100, 0)
	engine := NewPopupLayoutEngine(Options{View: view})

	engine.Show(key, HintModeAccentPriority)
	assert.True(t, engine.IsShowingPreview())
	assert.False(t, engine.Preview().ShowsMoreHint)
}

func TestShowHintOnlyAlternateUnderDisabledMode(t *testing.T) {
	view := testView()
	key := testKey(100, 0)
	key.Alternates = []AlternateData{{Code: '1', Label: "1", Hint: true}}
	engine := NewPopupLayoutEngine(Options{View: view})

	engine.Show(key, HintModeDisabled)
	assert.False(t, engine.Preview().ShowsMoreHint)

	engine.Show(key, HintModeAccentPriority)
	assert.True(t, engine.Preview().ShowsMoreHint)
}

func TestExtendGridInvariants(t *testing.T) {
	view := testView()

	for n := 1; n <= 12; n++ {
		key := testKey(200, n)
		engine := NewPopupLayoutEngine(Options{View: view})
		engine.Extend(key, HintModeAccentPriority)

		grid := engine.Grid()
		require.True(t, grid.Visible, "n=%d", n)
		assert.Equal(t, n, grid.Row0Count+grid.Row1Count, "n=%d", n)
		assert.Len(t, grid.Elements, n, "n=%d", n)
		assert.Equal(t, int32(grid.Row0Count)*grid.CellWidth, grid.Width, "n=%d", n)
		assert.Equal(t, int32(grid.RowCount)*grid.CellHeight, grid.Height, "n=%d", n)
		assert.Equal(t, -grid.Height, grid.YOffset, "n=%d", n)
		assert.GreaterOrEqual(t, grid.AnchorOffset, 0, "n=%d", n)
		assert.GreaterOrEqual(t, grid.ActiveIndex, 0, "n=%d", n)
		assert.Less(t, grid.ActiveIndex, n, "n=%d", n)
	}
}

func TestExtendWithoutAlternates(t *testing.T) {
	view := testView()
	key := testKey(100, 0)
	engine := NewPopupLayoutEngine(Options{View: view})

	engine.Extend(key, HintModeAccentPriority)
	assert.False(t, engine.IsShowingExtended())
	assert.False(t, engine.Grid().Visible)
}

func TestExtendAdjustedIndicesCoverRawSequence(t *testing.T) {
	view := testView()
	key := testKey(200, 7)
	key.Alternates[2].Main = true
	key.Alternates[5].Hint = true

	engine := NewPopupLayoutEngine(Options{View: view})
	engine.Extend(key, HintModeAccentPriority)

	grid := engine.Grid()
	seen := make(map[int]bool)
	for _, elem := range grid.Elements {
		assert.False(t, seen[elem.AdjustedIndex], "raw index %d shown twice", elem.AdjustedIndex)
		seen[elem.AdjustedIndex] = true
	}
	assert.Len(t, seen, 7)

	// The main entry sits on the slot over the key.
	active := grid.Elements[grid.ActiveIndex]
	assert.Equal(t, 2, active.AdjustedIndex)
}

func TestExtendDisabledModeDropsHintOnlyEntry(t *testing.T) {
	view := testView()
	key := testKey(200, 4)
	key.Alternates[1].Hint = true

	engine := NewPopupLayoutEngine(Options{View: view})
	engine.Extend(key, HintModeDisabled)

	grid := engine.Grid()
	require.Len(t, grid.Elements, 3)
	for _, elem := range grid.Elements {
		assert.NotEqual(t, 1, elem.AdjustedIndex, "hint-only entry must not be shown")
	}
}

func TestActiveAlternate(t *testing.T) {
	view := testView()
	key := testKey(200, 5)
	engine := NewPopupLayoutEngine(Options{View: view})

	// Nothing extended yet.
	assert.Nil(t, engine.ActiveAlternate(key))

	engine.Extend(key, HintModeAccentPriority)
	require.True(t, engine.PropagateMotionEvent(key, key.KeyBounds.X+key.KeyBounds.W/2, key.KeyBounds.Y, 0))

	alt := engine.ActiveAlternate(key)
	require.NotNil(t, alt)
	grid := engine.Grid()
	assert.Equal(t, key.Alternates[grid.Elements[grid.ActiveIndex].AdjustedIndex], *alt)
}

func TestActiveAlternateSkipsUndefinedElements(t *testing.T) {
	view := testView()
	key := testKey(200, 3)
	// An icon alternate with no resolver degrades to an undefined element.
	key.Alternates[0] = AlternateData{Code: CodeSettings}

	engine := NewPopupLayoutEngine(Options{View: view})
	engine.Extend(key, HintModeAccentPriority)

	grid := engine.Grid()
	for i, elem := range grid.Elements {
		if elem.Kind != ElementUndefined {
			continue
		}
		engine.grid.ActiveIndex = i
		assert.Nil(t, engine.ActiveAlternate(key), "undefined element %d must not select", i)
	}
}

func TestHideIsIdempotent(t *testing.T) {
	view := testView()
	key := testKey(100, 6)
	engine := NewPopupLayoutEngine(Options{View: view})

	engine.Show(key, HintModeAccentPriority)
	engine.Extend(key, HintModeAccentPriority)
	require.True(t, engine.IsShowingPreview())
	require.True(t, engine.IsShowingExtended())

	engine.Hide()
	engine.Hide()

	assert.False(t, engine.IsShowingPreview())
	assert.False(t, engine.IsShowingExtended())
	assert.False(t, engine.Preview().Visible)
	assert.False(t, engine.Grid().Visible)
	assert.Equal(t, -1, engine.Grid().ActiveIndex)
}

func TestDismissAll(t *testing.T) {
	view := testView()
	key := testKey(100, 6)
	engine := NewPopupLayoutEngine(Options{View: view})

	engine.Show(key, HintModeAccentPriority)
	engine.Extend(key, HintModeAccentPriority)
	engine.DismissAll()

	assert.False(t, engine.IsShowingPreview())
	assert.False(t, engine.IsShowingExtended())
	assert.Nil(t, engine.ActiveAlternate(key))
}

func TestGridSnapshotIsDetached(t *testing.T) {
	view := testView()
	key := testKey(200, 4)
	engine := NewPopupLayoutEngine(Options{View: view})
	engine.Extend(key, HintModeAccentPriority)

	snapshot := engine.Grid()
	snapshot.Elements[0] = VisualElement{Kind: ElementUndefined, AdjustedIndex: -99}

	fresh := engine.Grid()
	assert.NotEqual(t, -99, fresh.Elements[0].AdjustedIndex)
}

func TestEngineWithoutView(t *testing.T) {
	engine := NewPopupLayoutEngine(Options{})
	key := testKey(100, 3)

	engine.Show(key, HintModeAccentPriority)
	engine.Extend(key, HintModeAccentPriority)

	assert.False(t, engine.IsShowingPreview())
	assert.False(t, engine.IsShowingExtended())
}

func TestExtendUnsupportedKeyKind(t *testing.T) {
	view := testView()
	key := testKey(100, 3)
	key.KeyKind = KindOther

	engine := NewPopupLayoutEngine(Options{View: view})
	engine.Extend(key, HintModeAccentPriority)
	assert.False(t, engine.IsShowingExtended())
}
