package tree

import (
	"fmt"
	"testing"

	"dalal-market/internal/marketerrors"

	"github.com/stretchr/testify/require"
)

func mapLookup(nodes map[string]Node) Lookup {
	return func(id string) (Node, error) {
		n, ok := nodes[id]
		if !ok {
			return Node{}, fmt.Errorf("node %s: %w", id, marketerrors.ErrCategoryNotFound)
		}
		return n, nil
	}
}

func TestFullPath(t *testing.T) {
	nodes := map[string]Node{
		"cars": {ID: "cars", Name: "Cars"},
		"used": {ID: "used", Name: "Used Cars", ParentID: "cars"},
		"suv":  {ID: "suv", Name: "SUV", ParentID: "used"},
	}
	lookup := mapLookup(nodes)

	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "root", id: "cars", want: "Cars"},
		{name: "child", id: "used", want: "Cars > Used Cars"},
		{name: "grandchild", id: "suv", want: "Cars > Used Cars > SUV"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FullPath(tc.id, lookup)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFullPath_CycleIsBounded(t *testing.T) {
	nodes := map[string]Node{
		"a": {ID: "a", Name: "A", ParentID: "b"},
		"b": {ID: "b", Name: "B", ParentID: "a"},
	}
	_, err := FullPath("a", mapLookup(nodes))
	require.ErrorIs(t, err, marketerrors.ErrCategoryCycle)
}

func TestFullPath_MissingParent(t *testing.T) {
	nodes := map[string]Node{"a": {ID: "a", Name: "A", ParentID: "ghost"}}
	_, err := FullPath("a", mapLookup(nodes))
	require.ErrorIs(t, err, marketerrors.ErrCategoryNotFound)
}

func TestCheckParent(t *testing.T) {
	nodes := map[string]Node{
		"cars": {ID: "cars", Name: "Cars"},
		"used": {ID: "used", Name: "Used Cars", ParentID: "cars"},
		"suv":  {ID: "suv", Name: "SUV", ParentID: "used"},
	}
	lookup := mapLookup(nodes)

	require.NoError(t, CheckParent("", "cars", lookup), "new node under existing parent")
	require.NoError(t, CheckParent("suv", "cars", lookup), "move up the tree")
	require.NoError(t, CheckParent("cars", "", lookup), "detach to root")

	require.ErrorIs(t, CheckParent("cars", "cars", lookup), marketerrors.ErrCategoryCycle)
	require.ErrorIs(t, CheckParent("cars", "suv", lookup), marketerrors.ErrCategoryCycle)
	require.ErrorIs(t, CheckParent("used", "suv", lookup), marketerrors.ErrCategoryCycle)
}

func TestCheckParent_DepthLimit(t *testing.T) {
	nodes := make(map[string]Node)
	parent := ""
	for i := 0; i < MaxDepth; i++ {
		id := fmt.Sprintf("n%d", i)
		nodes[id] = Node{ID: id, Name: id, ParentID: parent}
		parent = id
	}
	err := CheckParent("", parent, mapLookup(nodes))
	require.ErrorIs(t, err, marketerrors.ErrCategoryCycle)
}
