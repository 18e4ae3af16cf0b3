// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// impl_path.go - Path(n): edges (i-1)–i for i=1..n-1, increasing order.
//
// Complexity: O(n).

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		base := d.block(n)
		for i := 1; i < n; i++ {
			d.edge(base+i-1, base+i, cfg)
		}

		return nil
	}
}
