package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/anhncs/CommunityDetectionCodes/bfs"
	"github.com/anhncs/CommunityDetectionCodes/core"
)

// chain builds the path 0-1-...-(n-1).
func chain(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		g.SetEdge(i, i+1, core.DefaultWeight)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start node out of range
	g := core.NewGraph(2)
	if _, err := bfs.BFS(g, 2); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("bad start: want ErrStartOutOfRange, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0 undirected cycle
	g := core.NewGraph(4)
	for i := 0; i < 4; i++ {
		g.SetEdge(i, (i+1)%4, core.DefaultWeight)
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Order[0] != 0 {
		t.Errorf("first node = %d; want 0", res.Order[0])
	}
	// Next two must be 1 and 3 in any order
	layer1 := map[int]bool{res.Order[1]: true, res.Order[2]: true}
	if !layer1[1] || !layer1[3] {
		t.Errorf("depth-1 layer = %v; want {1,3}", res.Order[1:3])
	}
	if res.Order[3] != 2 {
		t.Errorf("last node = %d; want 2", res.Order[3])
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start node.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph(4)
	g.SetEdge(0, 1, core.DefaultWeight) // component 1
	g.SetEdge(2, 3, core.DefaultWeight) // component 2

	res, _ := bfs.BFS(g, 2)
	if !reflect.DeepEqual(res.Order, []int{2, 3}) {
		t.Errorf("From 2: got %v; want [2 3]", res.Order)
	}
	if res.Reached(0) || res.Depth[1] != -1 {
		t.Errorf("nodes of the other component must stay unreached")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(3)
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_OnVisitError checks that a hook error aborts the traversal.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(chain(5), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit: want wrapped stop error, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := chain(4)
	g2 := chain(5)
	g2.SetEdge(3, 4, core.NoEdge)

	res, _ := bfs.BFS(g, 0)
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo start: got %v; want [0]", path)
	}
	if path, _ := res.PathTo(3); !reflect.DeepEqual(path, []int{0, 1, 2, 3}) {
		t.Errorf("PathTo 3: got %v; want [0 1 2 3]", path)
	}

	res2, _ := bfs.BFS(g2, 0)
	_, err := res2.PathTo(4)
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(chain(100), 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestConnectedAndComponents checks the exact connectivity helpers.
func TestConnectedAndComponents(t *testing.T) {
	if bfs.Connected(nil) {
		t.Error("nil graph must not be connected")
	}
	if !bfs.Connected(core.NewGraph(0)) || !bfs.Connected(core.NewGraph(1)) {
		t.Error("empty and single-node graphs are connected")
	}
	if bfs.Connected(core.NewGraph(2)) {
		t.Error("two isolated nodes are not connected")
	}

	g := chain(6)
	if !bfs.Connected(g) {
		t.Fatal("chain must be connected")
	}
	g.SetEdge(2, 3, core.NoEdge)
	if bfs.Connected(g) {
		t.Fatal("cut chain must be disconnected")
	}
	want := [][]int{{0, 1, 2}, {3, 4, 5}}
	if got := bfs.Components(g); !reflect.DeepEqual(got, want) {
		t.Errorf("Components = %v; want %v", got, want)
	}
}
