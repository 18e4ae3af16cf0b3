// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// impl_star.go - Star(n): the first id of the block is the center,
// spokes center–leaf in increasing leaf order.
//
// Complexity: O(n).

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star with n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		center := d.block(n)
		for leaf := 1; leaf < n; leaf++ {
			d.edge(center, center+leaf, cfg)
		}

		return nil
	}
}
