package cone

import "fmt"

// Layout assigns offsets to kinds/sizes declared in input order and checks
// that they partition [0, total).
//
// Errors: ErrBadSize for a size ≤ 0, ErrPartition when the sizes do not sum
// to total. Both are wrapped with the offending position.
func Layout(kinds []Kind, sizes []int, total int) ([]Domain, error) {
	if len(kinds) != len(sizes) {
		return nil, fmt.Errorf("layout: %d kinds, %d sizes: %w", len(kinds), len(sizes), ErrPartition)
	}

	var (
		out    = make([]Domain, len(kinds))
		offset int
	)
	for i, k := range kinds {
		if sizes[i] <= 0 {
			return nil, fmt.Errorf("layout: domain %d has size %d: %w", i, sizes[i], ErrBadSize)
		}
		out[i] = Domain{Kind: k, Size: sizes[i], Offset: offset}
		offset += sizes[i]
	}
	if offset != total {
		return nil, fmt.Errorf("layout: sizes sum to %d, declared %d: %w", offset, total, ErrPartition)
	}

	return out, nil
}

// Total returns the sum of domain sizes.
func Total(domains []Domain) int {
	var n int
	for _, d := range domains {
		n += d.Size
	}

	return n
}
