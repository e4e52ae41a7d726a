package catalog

import "slices"

// Build turns raw rates into the canonical display catalog: forbidden
// records are dropped, the rest are decorated and stably sorted ascending
// by size. The result is built once at startup and treated as immutable.
func Build(rates []Rate) []Skip {
	skips := make([]Skip, 0, len(rates))
	for _, r := range rates {
		if r.Forbidden {
			continue
		}
		skips = append(skips, Decorate(r))
	}
	slices.SortStableFunc(skips, func(a, b Skip) int {
		return a.Size - b.Size
	})
	return skips
}

// MostPopularIndex returns the index of the first entry holding the running
// popularity maximum. Later entries with equal popularity do not displace
// it. Degenerate catalogs return 0.
func MostPopularIndex(skips []Skip) int {
	best := 0
	for i := 1; i < len(skips); i++ {
		if skips[i].Popularity > skips[best].Popularity {
			best = i
		}
	}
	return best
}

// IndexBySize returns the index of the first entry with the given size.
// The second result is false when no entry matches; callers decide whether
// to fall back to MostPopularIndex rather than having the miss masked here.
func IndexBySize(skips []Skip, size int) (int, bool) {
	for i, s := range skips {
		if s.Size == size {
			return i, true
		}
	}
	return 0, false
}

// ByID returns the entry with the given rate ID.
func ByID(skips []Skip, id int) (Skip, bool) {
	for _, s := range skips {
		if s.ID == id {
			return s, true
		}
	}
	return Skip{}, false
}
