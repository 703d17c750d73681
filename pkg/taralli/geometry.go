package taralli

// baseGeometry is the popup cell geometry derived from a pressed key: the
// preview bubble size and the horizontal centering difference between key
// and popup. The extended grid reuses the same cell dimensions.
type baseGeometry struct {
	width  int32
	height int32
	xDiff  int32
}

// compactBarHeightScale stretches popup heights on compact bar keyboards,
// whose keys are shorter than the full keyboard's.
const compactBarHeightScale = 1.2

// computeBaseGeometry sizes the preview popup for a pressed key. Factors are
// relative to the view's reference key for text keyboards and to the pressed
// key itself for media (symbol/emoji) grids. Results truncate to whole
// pixels. Unsupported key kinds produce zero geometry.
func computeBaseGeometry(view KeyboardView, key Key) baseGeometry {
	bounds := key.Bounds()
	ref := view.DesiredKey()

	var width, height float64
	switch key.Kind() {
	case KindText:
		if view.Orientation() == OrientationLandscape {
			if view.IsCompactBar() {
				width = 1.0 * float64(bounds.W)
				height = 3.0 * compactBarHeightScale * float64(ref.H)
			} else {
				width = 1.0 * float64(ref.W)
				height = 3.0 * float64(ref.H)
			}
		} else {
			if view.IsCompactBar() {
				width = 1.1 * float64(bounds.W)
				height = 2.5 * compactBarHeightScale * float64(ref.H)
			} else {
				width = 1.1 * float64(ref.W)
				height = 2.5 * float64(ref.H)
			}
		}
	case KindMedia:
		width = 1.0 * float64(bounds.W)
		height = 2.5 * float64(bounds.H)
	default:
		return baseGeometry{}
	}

	geom := baseGeometry{
		width:  int32(width),
		height: int32(height),
	}
	geom.xDiff = (bounds.W - geom.width) / 2
	return geom
}
