package taralli

// HintMode controls where main and hint alternates land in the extended
// grid's visual order.
type HintMode int

const (
	// HintModeDisabled drops hint-only alternates and places only the main
	// entry specially.
	HintModeDisabled HintMode = iota
	// HintModeAccentPriority places the main entry over the key with the
	// hint entry adjacent.
	HintModeAccentPriority
	// HintModeHintPriority places the hint entry over the key with the main
	// entry adjacent.
	HintModeHintPriority
	// HintModeSmartPriority currently resolves like accent priority.
	HintModeSmartPriority
)

// slotPermutation decides which raw alternate index each visual slot
// displays. Slots are flat: row 1 (top) slots first, then row 0, each
// left-to-right. initUiIndex is the slot directly over the pressed key.
//
// The priority entry for the mode claims initUiIndex, its partner claims an
// adjacent slot (slot+1 preferred, slot-1 as fallback), and every unclaimed
// alternate fills the remaining slots in its original relative order. The
// result is a permutation of [0, n).
func slotPermutation(n int, mainAt, hintAt int, mode HintMode, initUiIndex int) []int {
	if n <= 0 {
		return nil
	}
	if mainAt >= n {
		mainAt = -1
	}
	if hintAt >= n || hintAt == mainAt {
		hintAt = -1
	}
	if initUiIndex < 0 {
		initUiIndex = 0
	} else if initUiIndex >= n {
		initUiIndex = n - 1
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = -1
	}

	place := func(slot, raw int) bool {
		if slot < 0 || slot >= n || perm[slot] >= 0 {
			return false
		}
		perm[slot] = raw
		return true
	}
	placeAdjacent := func(raw int) {
		if !place(initUiIndex+1, raw) {
			place(initUiIndex-1, raw)
		}
	}

	switch mode {
	case HintModeDisabled:
		if mainAt >= 0 {
			place(initUiIndex, mainAt)
		}
	case HintModeAccentPriority, HintModeSmartPriority:
		if mainAt >= 0 {
			place(initUiIndex, mainAt)
			if hintAt >= 0 {
				placeAdjacent(hintAt)
			}
		} else if hintAt >= 0 {
			place(initUiIndex, hintAt)
		}
	case HintModeHintPriority:
		if hintAt >= 0 {
			place(initUiIndex, hintAt)
			if mainAt >= 0 {
				placeAdjacent(mainAt)
			}
		} else if mainAt >= 0 {
			place(initUiIndex, mainAt)
		}
	}

	claimed := make([]bool, n)
	for _, raw := range perm {
		if raw >= 0 {
			claimed[raw] = true
		}
	}

	slot := 0
	for raw := 0; raw < n; raw++ {
		if claimed[raw] {
			continue
		}
		for slot < n && perm[slot] >= 0 {
			slot++
		}
		perm[slot] = raw
		slot++
	}

	return perm
}
