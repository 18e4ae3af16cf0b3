// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// impl_random_regular.go - RandomRegular(n, d): simple d-regular graph by
// stub matching with bounded retries.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - No self-loops, no parallel edges; after maxStubMatchingAttempts
//     failed shuffles the result is ErrConstructFailed and nothing is added.
//
// Complexity: O(n·d) per attempt.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 50
)

// RandomRegular returns a Constructor that samples a d-regular graph on n vertices.
func RandomRegular(n, deg int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, "n", n, minRRVertices); err != nil {
			return err
		}
		if deg < 0 || deg >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, deg, ErrTooFewVertices)
		}
		if (n*deg)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, deg, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*deg)
		for i := 0; i < n; i++ {
			for k := 0; k < deg; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			d.block(n)
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simpleMatching(stubs) {
				continue
			}

			base := d.block(n)
			for i := 0; i < len(stubs); i += 2 {
				d.edge(base+stubs[i], base+stubs[i+1], cfg)
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simpleMatching reports whether consecutive stub pairs form no loop and no
// repeated pair.
func simpleMatching(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
