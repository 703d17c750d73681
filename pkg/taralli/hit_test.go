package taralli

import (
	"math"

	"github.com/BrandonKowalski/taralli/pkg/taralli/internal"
)

// verticalSlack extends the hit band below the key top, so a finger resting
// on the key still selects from the bottom row.
const verticalSlack = 0.9

// PropagateMotionEvent routes a pointer position to the active grid element.
// Coordinates are absolute; the key's top-left is the local origin. Returns
// false without touching the active index when the pointer is outside the
// grid's hit band, true after updating it otherwise.
//
// The bottom row claims positions from the key top down to 0.9 cell heights
// into the key; the top row claims the cell band above the key. The
// anchor-left and anchor-right horizontal windows are kept as separate
// long-form branches on purpose: their bounds are tuned independently.
func (e *PopupLayoutEngine) PropagateMotionEvent(key Key, x, y int32, pointerIndex int) bool {
	if key == nil || !e.grid.Visible {
		return false
	}
	g := &e.grid

	cellW := float64(g.CellWidth)
	cellH := float64(g.CellHeight)
	if cellW <= 0 || cellH <= 0 {
		return false
	}

	bounds := key.Bounds()
	relX := float64(x - bounds.X)
	relY := float64(y - bounds.Y)

	if relY < -cellH || relY > verticalSlack*cellH {
		return false
	}

	inRow1 := relY < 0 && g.Row1Count > 0
	rowCount := g.Row0Count
	if inRow1 {
		rowCount = g.Row1Count
	}

	xDiff := float64(g.XDiff)
	offset := g.AnchorOffset

	var slot int
	switch g.Anchor {
	case AnchorLeft:
		low := xDiff - float64(offset+1)*cellW
		high := xDiff + float64(g.Row0Count+1-offset)*cellW
		if relX < low || relX > high {
			return false
		}
		kX := int(math.Floor(relX / cellW))
		slot = internal.Clamp(kX+offset, 0, rowCount-1)
	case AnchorRight:
		keyW := float64(bounds.W)
		low := keyW - xDiff - float64(g.Row0Count+1-offset)*cellW
		high := keyW - xDiff + float64(offset+1)*cellW
		if relX < low || relX > high {
			return false
		}
		kX := int(math.Floor((keyW - relX) / cellW))
		fromEnd := internal.Clamp(kX+offset, 0, rowCount-1)
		slot = rowCount - 1 - fromEnd
	default:
		return false
	}

	if inRow1 {
		g.ActiveIndex = slot
	} else {
		g.ActiveIndex = g.Row1Count + slot
	}

	e.log.Debug("popup pointer routed",
		"pointer", pointerIndex,
		"active", g.ActiveIndex,
	)
	return true
}
