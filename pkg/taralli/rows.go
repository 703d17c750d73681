package taralli

// AnchorSide is the horizontal keyboard side the extended grid is biased
// toward so it stays on screen. Exactly one side is chosen per extension.
type AnchorSide int

const (
	AnchorLeft AnchorSide = iota
	AnchorRight
)

// Gravity mirrors the anchor side and tells the rendering collaborator which
// end of the grid rows to pin.
type Gravity int

const (
	GravityLeft Gravity = iota
	GravityRight
)

// splitRows distributes n alternates over up to two rows. Up to five fit in
// a single row; beyond that the count is split, with the bottom row (row 0,
// nearest the key) taking the extra element when n is odd.
func splitRows(n int) (row0, row1 int) {
	switch {
	case n <= 0:
		return 0, 0
	case n <= 5:
		return n, 0
	case n%2 != 0:
		return (n + 1) / 2, (n - 1) / 2
	default:
		return n / 2, n / 2
	}
}

// anchorSideForKey picks the anchor from the key's left edge: keys in the
// left half of the keyboard anchor left, the rest anchor right.
func anchorSideForKey(view KeyboardView, key Key) AnchorSide {
	if key.Bounds().X < view.MeasuredWidth()/2 {
		return AnchorLeft
	}
	return AnchorRight
}

// centeringOffset is the ideal number of cells the grid shifts past the key
// toward the anchor side so the bottom row centers over the key.
func centeringOffset(row0 int) int {
	switch {
	case row0 <= 1:
		return 0
	case row0%2 != 0:
		return (row0 - 1) / 2
	default:
		return row0/2 - 1
	}
}

// solveAnchorOffset caps the centering offset so the grid never exceeds the
// keyboard edge on the anchor side. availableSpace is measured from the
// popup-adjusted key edge (the preview bubble's edge, not the key's) to the
// keyboard edge.
func solveAnchorOffset(view KeyboardView, key Key, geom baseGeometry, row0 int, side AnchorSide) int {
	offset := centeringOffset(row0)
	if offset <= 0 || geom.width <= 0 {
		return 0
	}

	bounds := key.Bounds()
	var availableSpace int32
	if side == AnchorLeft {
		availableSpace = bounds.X + geom.xDiff
	} else {
		availableSpace = view.MeasuredWidth() - (bounds.X + geom.xDiff + geom.width)
	}

	for offset > 0 && availableSpace < int32(offset)*geom.width {
		offset--
	}
	return offset
}
