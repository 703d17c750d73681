package taralli

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/taralli/pkg/taralli/internal"
)

// PreviewState is the layout of the preview bubble shown above a pressed
// key. Offsets are relative to the key's top-left corner.
type PreviewState struct {
	Width   int32
	Height  int32
	XOffset int32
	YOffset int32
	Label   string
	// ShowsMoreHint indicates the key has alternates reachable by holding.
	ShowsMoreHint bool
	Visible       bool
}

// ExtendedGridState is the layout of the extended alternate grid. It is
// recomputed wholesale on every Extend call so the anchor, offset and row
// counts always describe the same extension. Offsets are relative to the
// key's top-left corner.
type ExtendedGridState struct {
	RowCount  int
	Row0Count int
	Row1Count int
	// Elements is the flat visual slot list: row 1 (top) slots first, then
	// row 0, each left-to-right.
	Elements []VisualElement
	Width    int32
	Height   int32
	XOffset  int32
	YOffset  int32
	Anchor   AnchorSide
	Gravity  Gravity
	// AnchorOffset is how many cells the grid extends past the key toward
	// the anchor side.
	AnchorOffset int
	CellWidth    int32
	CellHeight   int32
	XDiff        int32
	// ActiveIndex is the flat index of the element under the pointer, -1
	// when none.
	ActiveIndex int
	Visible     bool
}

// Options configures a PopupLayoutEngine.
type Options struct {
	// View supplies keyboard measurements. Required.
	View KeyboardView
	// Resources resolves icons and localized strings. Optional; without it
	// every icon alternate degrades to an undefined element.
	Resources ResourceResolver
}

// PopupLayoutEngine computes layout geometry and touch routing for the
// long-press popup of a soft keyboard: the preview bubble and the extended
// alternate grid.
//
// The engine owns its preview and grid state exclusively; callers read them
// through snapshot accessors. All mutating calls must stay on one logical
// thread (the UI event thread); only the visibility flags are safe to read
// from other goroutines.
type PopupLayoutEngine struct {
	view KeyboardView
	res  ResourceResolver
	log  *slog.Logger

	preview PreviewState
	grid    ExtendedGridState

	showingPreview  atomic.Bool
	showingExtended atomic.Bool
}

func NewPopupLayoutEngine(options Options) *PopupLayoutEngine {
	res := options.Resources
	if res == nil {
		res = noopResolver{}
	}
	e := &PopupLayoutEngine{
		view: options.View,
		res:  res,
		log:  internal.GetLogger(),
	}
	e.grid.ActiveIndex = -1
	return e
}

// workingAlternate pairs an alternate with its index in the key's raw
// sequence, which survives hint-mode filtering.
type workingAlternate struct {
	raw  int
	data AlternateData
}

// workingAlternates is the key's alternate list under the given hint mode.
// With hints disabled the hint-only entry is excluded entirely.
func workingAlternates(key Key, mode HintMode) []workingAlternate {
	count := key.AlternateCount()
	alts := make([]workingAlternate, 0, count)
	for i := 0; i < count; i++ {
		alt := key.AlternateAt(i)
		if mode == HintModeDisabled && alt.Hint && !alt.Main {
			continue
		}
		alts = append(alts, workingAlternate{raw: i, data: alt})
	}
	return alts
}

// markerIndices finds the main and hint entries in the working list. An
// entry marked as both counts as main only; a slot cannot be claimed twice.
func markerIndices(alts []workingAlternate) (mainAt, hintAt int) {
	mainAt, hintAt = -1, -1
	for i, alt := range alts {
		if alt.data.Main && mainAt < 0 {
			mainAt = i
		}
		if alt.data.Hint && hintAt < 0 {
			hintAt = i
		}
	}
	if hintAt == mainAt {
		hintAt = -1
	}
	return mainAt, hintAt
}

// Show computes the preview bubble for a pressed key and marks it visible.
// Space and every control code below it never get a preview.
func (e *PopupLayoutEngine) Show(key Key, mode HintMode) {
	if e.view == nil || key == nil || key.Code() <= CodeSpace {
		return
	}

	geom := computeBaseGeometry(e.view, key)
	if geom.width <= 0 || geom.height <= 0 {
		return
	}

	e.preview = PreviewState{
		Width:         geom.width,
		Height:        geom.height,
		XOffset:       geom.xDiff,
		YOffset:       -geom.height,
		Label:         key.Label(),
		ShowsMoreHint: len(workingAlternates(key, mode)) > 0,
		Visible:       true,
	}
	e.showingPreview.Store(true)

	e.log.Debug("showing key preview",
		"code", key.Code(),
		"width", geom.width,
		"height", geom.height,
	)
}

// Extend computes the extended alternate grid for a held key and marks it
// visible. Keys without alternates under the given hint mode are a no-op.
func (e *PopupLayoutEngine) Extend(key Key, mode HintMode) {
	if e.view == nil || key == nil {
		return
	}

	alts := workingAlternates(key, mode)
	n := len(alts)
	if n <= 0 {
		return
	}

	geom := computeBaseGeometry(e.view, key)
	if geom.width <= 0 || geom.height <= 0 {
		return
	}

	row0, row1 := splitRows(n)
	side := anchorSideForKey(e.view, key)
	offset := solveAnchorOffset(e.view, key, geom, row0, side)

	// The slot directly over the key: anchorOffset cells in from the
	// anchor-side end of the bottom row.
	var initUiIndex int
	if side == AnchorLeft {
		initUiIndex = row1 + offset
	} else {
		initUiIndex = row1 + row0 - 1 - offset
	}

	mainAt, hintAt := markerIndices(alts)
	perm := slotPermutation(n, mainAt, hintAt, mode, initUiIndex)

	elements := make([]VisualElement, n)
	for slot, wi := range perm {
		alt := alts[wi]
		elements[slot] = classifyAlternate(e.res, key.Kind(), alt.data, alt.raw)
	}

	rows := 1
	if row1 > 0 {
		rows = 2
	}
	width := int32(row0) * geom.width
	height := int32(rows) * geom.height

	var xOffset int32
	gravity := GravityLeft
	if side == AnchorLeft {
		xOffset = geom.xDiff - int32(offset)*geom.width
	} else {
		gravity = GravityRight
		xOffset = key.Bounds().W - geom.xDiff + int32(offset)*geom.width - width
	}

	e.grid = ExtendedGridState{
		RowCount:     rows,
		Row0Count:    row0,
		Row1Count:    row1,
		Elements:     elements,
		Width:        width,
		Height:       height,
		XOffset:      xOffset,
		YOffset:      -height,
		Anchor:       side,
		Gravity:      gravity,
		AnchorOffset: offset,
		CellWidth:    geom.width,
		CellHeight:   geom.height,
		XDiff:        geom.xDiff,
		ActiveIndex:  initUiIndex,
		Visible:      true,
	}
	e.showingExtended.Store(true)

	e.log.Debug("extended popup grid",
		"alternates", n,
		"row0", row0,
		"row1", row1,
		"anchor", int(side),
		"offset", offset,
	)
}

// ActiveAlternate returns the alternate under the pointer, or nil when no
// selectable element is active.
func (e *PopupLayoutEngine) ActiveAlternate(key Key) *AlternateData {
	if key == nil || !e.grid.Visible {
		return nil
	}
	idx := e.grid.ActiveIndex
	if idx < 0 || idx >= len(e.grid.Elements) {
		return nil
	}
	elem := e.grid.Elements[idx]
	if elem.Kind == ElementUndefined {
		return nil
	}
	if elem.AdjustedIndex < 0 || elem.AdjustedIndex >= key.AlternateCount() {
		return nil
	}
	alt := key.AlternateAt(elem.AdjustedIndex)
	return &alt
}

// Hide marks both popups invisible. Idempotent.
func (e *PopupLayoutEngine) Hide() {
	e.preview = PreviewState{}
	e.grid = ExtendedGridState{ActiveIndex: -1}
	e.showingPreview.Store(false)
	e.showingExtended.Store(false)
}

// DismissAll hides both popups and discards any routing state.
func (e *PopupLayoutEngine) DismissAll() {
	if e.showingPreview.Load() || e.showingExtended.Load() {
		e.log.Debug("dismissing popups")
	}
	e.Hide()
}

// IsShowingPreview reports whether the preview bubble is visible. Safe to
// call from any goroutine.
func (e *PopupLayoutEngine) IsShowingPreview() bool {
	return e.showingPreview.Load()
}

// IsShowingExtended reports whether the extended grid is visible. Safe to
// call from any goroutine.
func (e *PopupLayoutEngine) IsShowingExtended() bool {
	return e.showingExtended.Load()
}

// Preview returns a snapshot of the preview state.
func (e *PopupLayoutEngine) Preview() PreviewState {
	return e.preview
}

// Grid returns a snapshot of the extended grid state, with its own copy of
// the element list.
func (e *PopupLayoutEngine) Grid() ExtendedGridState {
	snapshot := e.grid
	if len(e.grid.Elements) > 0 {
		snapshot.Elements = append([]VisualElement(nil), e.grid.Elements...)
	}
	return snapshot
}
