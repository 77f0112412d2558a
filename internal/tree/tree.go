// Package tree walks self-referential parent links (categories, locations)
// with a hard depth bound so a corrupt store can never recurse forever.
package tree

import (
	"fmt"
	"strings"

	"dalal-market/internal/marketerrors"
)

// MaxDepth bounds every ancestor walk
const MaxDepth = 32

// PathSeparator joins ancestor names in a full path
const PathSeparator = " > "

// Node is the minimal view of a tree element
type Node struct {
	ID       string
	Name     string
	ParentID string
}

// Lookup resolves a node by id
type Lookup func(id string) (Node, error)

// Ancestors returns the chain from the root down to id, id included.
func Ancestors(id string, lookup Lookup) ([]Node, error) {
	var chain []Node
	seen := make(map[string]bool)
	current := id
	for current != "" {
		if seen[current] {
			return nil, fmt.Errorf("tree: node %s: %w", current, marketerrors.ErrCategoryCycle)
		}
		if len(chain) >= MaxDepth {
			return nil, fmt.Errorf("tree: depth exceeds %d at %s: %w", MaxDepth, current, marketerrors.ErrCategoryCycle)
		}
		seen[current] = true
		node, err := lookup(current)
		if err != nil {
			return nil, err
		}
		chain = append(chain, node)
		current = node.ParentID
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// FullPath returns ancestor names joined like "Cars > Used Cars"
func FullPath(id string, lookup Lookup) (string, error) {
	chain, err := Ancestors(id, lookup)
	if err != nil {
		return "", err
	}
	names := make([]string, len(chain))
	for i, n := range chain {
		names[i] = n.Name
	}
	return strings.Join(names, PathSeparator), nil
}

// CheckParent rejects parentID when attaching id under it would create a cycle.
// id may be empty for a node that does not exist yet.
func CheckParent(id, parentID string, lookup Lookup) error {
	if parentID == "" {
		return nil
	}
	if parentID == id {
		return fmt.Errorf("tree: node %s cannot be its own parent: %w", id, marketerrors.ErrCategoryCycle)
	}
	chain, err := Ancestors(parentID, lookup)
	if err != nil {
		return err
	}
	if len(chain) >= MaxDepth {
		return fmt.Errorf("tree: depth would exceed %d: %w", MaxDepth, marketerrors.ErrCategoryCycle)
	}
	for _, n := range chain {
		if id != "" && n.ID == id {
			return fmt.Errorf("tree: %s is an ancestor of %s: %w", id, parentID, marketerrors.ErrCategoryCycle)
		}
	}
	return nil
}
