// Package dag builds and executes the study dependency graph. Studies
// whose depends_on edges are satisfied run concurrently on a worker pool;
// a failure cancels the run and skips everything downstream.
package dag

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// RunFunc executes one node's work.
type RunFunc func(ctx context.Context) error

// Node states.
const (
	Pending int32 = iota
	Running
	Done
	Failed
)

// Node is one study in the execution graph.
type Node struct {
	ID         string
	Run        RunFunc
	State      atomic.Int32
	Err        error
	Deps       map[string]*Node
	Dependents map[string]*Node

	depCount atomic.Int32
	skipOnce sync.Once
}

// Graph is the study dependency graph.
type Graph struct {
	Nodes map[string]*Node
	mutex sync.RWMutex
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{Nodes: make(map[string]*Node)}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string, run RunFunc) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.Nodes[id]; ok {
		return
	}
	g.Nodes[id] = &Node{
		ID:         id,
		Run:        run,
		Deps:       make(map[string]*Node),
		Dependents: make(map[string]*Node),
	}
}

// AddEdge creates a directed edge from the `fromID` node to the `toID`
// node, meaning `toID` depends on `fromID`. An error is returned if either
// node does not exist or the edge would be self-referential.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.Nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}
	toNode, ok := g.Nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	if _, exists := toNode.Deps[fromID]; !exists {
		toNode.Deps[fromID] = fromNode
		fromNode.Dependents[toID] = toNode
		toNode.depCount.Add(1)
	}
	return nil
}

// DetectCycles checks the graph for any cycles. It returns a non-nil error
// if a cycle is found, naming the first node involved.
func (g *Graph) DetectCycles() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	// Depth-first search with the classic three node sets: permanently
	// visited, currently on the recursion stack, and unvisited.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *Node) error
	visit = func(n *Node) error {
		if permanent[n.ID] {
			return nil
		}
		if temporary[n.ID] {
			return fmt.Errorf("cycle detected involving node '%s'", n.ID)
		}
		temporary[n.ID] = true
		for _, dependent := range n.Dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}
		delete(temporary, n.ID)
		permanent[n.ID] = true
		return nil
	}

	for _, n := range g.Nodes {
		if !permanent[n.ID] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}
