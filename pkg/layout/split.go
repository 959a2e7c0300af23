package layout

// Split divides surplus among slots in proportion to weights.
//
// Shares are computed from the running weight total, so they always sum to
// exactly surplus and no share is off from its exact proportion by a whole
// unit. Slots with weight zero receive nothing. When every weight is zero
// (or surplus is not positive) nothing is handed out and the whole surplus
// is returned as unused.
func Split(surplus int, weights []int) (shares []int, unused int) {
	shares = make([]int, len(weights))
	if surplus <= 0 {
		return shares, max(surplus, 0)
	}
	total := 0
	for _, w := range weights {
		total += max(w, 0)
	}
	if total == 0 {
		return shares, surplus
	}
	cum, prev := 0, 0
	for i, w := range weights {
		cum += max(w, 0)
		next := surplus * cum / total
		shares[i] = next - prev
		prev = next
	}
	return shares, 0
}
