package centrality

import "github.com/katalvlaran/seedspread/core"

// Degree scores every vertex by its number of adjacency entries. Parallel
// edges each count; a self-loop counts once.
// Complexity: O(V).
func Degree(g *core.Graph) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	scores := make(Scores, g.NodeCount())
	for v := range scores {
		d, err := g.Degree(v)
		if err != nil {
			return nil, err
		}
		scores[v] = float64(d)
	}

	return scores, nil
}
