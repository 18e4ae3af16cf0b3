package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/seedspread/bfs"
	"github.com/katalvlaran/seedspread/core"
)

// mustGraph builds an n-vertex graph from [u,v] pairs; probabilities are irrelevant to BFS.
func mustGraph(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1], 0.5); err != nil {
			t.Fatal(err)
		}
	}
	g.Seal()

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.Run(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := mustGraph(t, 2)
	for _, start := range []int{-1, 2} {
		if _, err := bfs.Run(g, start); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("start %d: want ErrStartVertexNotFound, got %v", start, err)
		}
	}
	// negative MaxDepth is a violation
	if _, err := bfs.Run(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.Run(mustGraph(t, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth[0] != 0 || res.Sigma[0] != 1 {
		t.Errorf("Depth[0]=%d Sigma[0]=%v; want 0, 1", res.Depth[0], res.Sigma[0])
	}
}

// TestBFS_CycleDepthsAndSigma covers a 4-cycle, where the far vertex has two shortest paths.
func TestBFS_CycleDepthsAndSigma(t *testing.T) {
	// 0–1–2–3–0
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	res, err := bfs.Run(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []float64{1, 1, 2, 1}; !reflect.DeepEqual(res.Sigma, want) {
		t.Errorf("Sigma = %v; want %v", res.Sigma, want)
	}
	if want := []int{1, 3}; !reflect.DeepEqual(res.Preds[2], want) {
		t.Errorf("Preds[2] = %v; want %v", res.Preds[2], want)
	}
}

// TestBFS_ParallelEdgesCountAsPaths ensures multiplicity flows into Sigma without re-enqueueing.
func TestBFS_ParallelEdgesCountAsPaths(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 1}, [2]int{1, 2})
	res, _ := bfs.Run(g, 0)
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Sigma[1] != 2 || res.Sigma[2] != 2 {
		t.Errorf("Sigma = %v; want [1 2 2]", res.Sigma)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{2, 3})
	res, _ := bfs.Run(g, 2)
	if !reflect.DeepEqual(res.Order, []int{2, 3}) {
		t.Errorf("From 2: got %v; want [2 3]", res.Order)
	}
	if res.Reached(0) || res.Sigma[0] != 0 {
		t.Errorf("vertex 0 must be unreached")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	if res, _ := bfs.Run(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.Run(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	res, _ := bfs.Run(g, 0, bfs.WithFilterNeighbor(func(curr, nbr int, _ float64) bool {
		return !(curr == 1 && nbr == 2)
	}))
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitAbort asserts hook errors stop the traversal and are wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.Run(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		seen = append(seen, id)
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if !reflect.DeepEqual(seen, []int{0, 1}) {
		t.Errorf("visited %v; want [0 1]", seen)
	}
}

// TestBFS_PathTo covers reachable, trivial and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := mustGraph(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	res, _ := bfs.Run(g, 0)
	if path, _ := res.PathTo(3); !reflect.DeepEqual(path, []int{0, 1, 2, 3}) {
		t.Errorf("PathTo(3): got %v", path)
	}
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo start: got %v; want [0]", path)
	}
	_, err := res.PathTo(4)
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.Run(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
