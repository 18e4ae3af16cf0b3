// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// impl_complete.go - Complete(n): every pair i<j, i ascending then j ascending.
//
// Complexity: O(n²).

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		base := d.block(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.edge(base+i, base+j, cfg)
			}
		}

		return nil
	}
}
