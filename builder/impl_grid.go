// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice, row-major ids.
// For each cell the right edge is emitted before the down edge.
//
// Complexity: O(rows·cols).

package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols lattice;
// cell (r,c) gets id base + r*cols + c.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		base := d.block(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					d.edge(id, id+1, cfg)
				}
				if r+1 < rows {
					d.edge(id, id+cols, cfg)
				}
			}
		}

		return nil
	}
}
