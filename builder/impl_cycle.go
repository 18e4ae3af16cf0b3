// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// impl_cycle.go - Cycle(n): the path 0..n-1 plus the closing edge (n-1)–0.
//
// Complexity: O(n).

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		base := d.block(n)
		for i := 0; i < n; i++ {
			d.edge(base+i, base+(i+1)%n, cfg)
		}

		return nil
	}
}
