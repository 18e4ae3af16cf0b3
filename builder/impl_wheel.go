// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// impl_wheel.go - Wheel(n) = C_{n-1} + center. The center is the first id
// of the block; rim edges are emitted first, then spokes.
//
// Complexity: O(n).

package builder

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends a wheel on n vertices.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		center := d.block(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			d.edge(center+1+i, center+1+(i+1)%rim, cfg)
		}
		for i := 1; i < n; i++ {
			d.edge(center, center+i, cfg)
		}

		return nil
	}
}
