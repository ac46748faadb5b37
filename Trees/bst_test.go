package Trees

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoValues = []int{10, 23, 4, 56, 73, 33, 44, 38}

func TestBST_Empty(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.Height())
	for _, v := range []int{0, -1, 42} {
		assert.False(t, tree.Has(v))
		assert.False(t, tree.Remove(v))
	}
	_, ok := tree.Minimum()
	assert.False(t, ok)
	_, ok = tree.Maximum()
	assert.False(t, ok)
	_, ok = tree.Take()
	assert.False(t, ok)
	assert.Empty(t, tree.Sorted())
	assert.False(t, tree.Corrupt())
	assert.Equal(t, "BST\n", tree.String())
}

func TestBST_NoDuplicates(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	assert.True(t, tree.Insert(7))
	assert.False(t, tree.Insert(7))
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, []int{7}, tree.Sorted())
}

func TestBST_RoundTrip(t *testing.T) {
	t.Parallel()

	tree := From(demoValues...)
	for _, v := range []int{-5, 0, 11, 100} {
		require.True(t, tree.Insert(v))
		assert.True(t, tree.Has(v))
		require.True(t, tree.Remove(v))
		assert.False(t, tree.Has(v))
	}
	assert.Equal(t, len(demoValues), tree.Size())
	assert.False(t, tree.Corrupt())
}

func TestBST_RemoveCount(t *testing.T) {
	t.Parallel()

	tree := From(demoValues...)
	assert.False(t, tree.Remove(100))
	assert.Equal(t, len(demoValues), tree.Size())
	for i, v := range demoValues {
		require.True(t, tree.Remove(v))
		assert.Equal(t, len(demoValues)-i-1, tree.Size())
		assert.False(t, tree.Corrupt())
	}
	assert.True(t, tree.Empty())
}

// Removing 33 promotes its only child 44 into 56's left link.
func TestBST_RemoveDemo(t *testing.T) {
	t.Parallel()

	tree := From(demoValues...)
	assert.True(t, tree.Has(33))
	assert.False(t, tree.Has(100))
	require.True(t, tree.Remove(33))
	assert.False(t, tree.Has(33))
	assert.Equal(t, []int{4, 10, 23, 38, 44, 56, 73}, tree.Sorted())
	assert.Equal(t, strings.Join([]string{
		"BST",
		"10",
		"├── L:4",
		"└── R:23",
		"    └── R:56",
		"        ├── L:44",
		"        │   └── L:38",
		"        └── R:73",
		"",
	}, "\n"), tree.String())
}

func TestBST_RemoveTwoChildren(t *testing.T) {
	t.Parallel()

	tree := From(50, 30, 70, 20, 40, 60, 80)
	require.True(t, tree.Remove(30))
	assert.Equal(t, strings.Join([]string{
		"BST",
		"50",
		"├── L:40",
		"│   └── L:20",
		"└── R:70",
		"    ├── L:60",
		"    └── R:80",
		"",
	}, "\n"), tree.String())

	// the root takes its successor 60, which leaves 70 without a left child.
	require.True(t, tree.Remove(50))
	assert.Equal(t, strings.Join([]string{
		"BST",
		"60",
		"├── L:40",
		"│   └── L:20",
		"└── R:70",
		"    └── R:80",
		"",
	}, "\n"), tree.String())
	assert.Equal(t, []int{20, 40, 60, 70, 80}, tree.Sorted())
	assert.False(t, tree.Corrupt())
}

// The successor sits deeper than the right child and has a right subtree
// of its own, which must take its place.
func TestBST_RemoveDeepSuccessor(t *testing.T) {
	t.Parallel()

	tree := From(10, 5, 20, 15, 25, 12, 17, 13)
	require.True(t, tree.Remove(10))
	v, _ := tree.Minimum()
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{5, 12, 13, 15, 17, 20, 25}, tree.Sorted())
	assert.True(t, strings.HasPrefix(tree.String(), "BST\n12\n"))
	assert.True(t, tree.Has(13))
	assert.False(t, tree.Corrupt())
}

func TestBST_SingleNodeLifecycle(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	require.True(t, tree.Insert(1))
	require.True(t, tree.Remove(1))
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Size())
	assert.False(t, tree.Has(1))
	require.True(t, tree.Insert(2))
	assert.Equal(t, []int{2}, tree.Sorted())
	assert.Equal(t, "BST\n2\n", tree.String())
}

func TestBST_Degenerate(t *testing.T) {
	t.Parallel()

	tree := From(1, 2, 3, 4, 5)
	assert.Equal(t, 5, tree.Height())
	for v := 1; v <= 5; v++ {
		assert.True(t, tree.Has(v))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.Sorted())
	assert.False(t, tree.Corrupt())
	assert.Equal(t, "BST\n1\n└── R:2\n    └── R:3\n        └── R:4\n            └── R:5\n", tree.String())
	require.True(t, tree.Remove(3))
	assert.Equal(t, 4, tree.Height())
}

func TestBST_Take(t *testing.T) {
	t.Parallel()

	tree := From(demoValues...)
	var got []int
	for v, ok := tree.Take(); ok; v, ok = tree.Take() {
		got = append(got, v)
	}
	assert.Equal(t, []int{4, 10, 23, 33, 38, 44, 56, 73}, got)
	assert.True(t, tree.Empty())
}

func TestBST_NewFunc(t *testing.T) {
	t.Parallel()

	byLen := NewFunc(func(a, b string) int { return len(a) - len(b) })
	assert.True(t, byLen.Insert("ccc"))
	assert.True(t, byLen.Insert("a"))
	assert.False(t, byLen.Insert("b"))
	assert.True(t, byLen.Has("z"))
	assert.Equal(t, []string{"a", "ccc"}, byLen.Sorted())
	assert.Panics(t, func() { NewFunc[int](nil) })
}

func TestBST_ClearAndValues(t *testing.T) {
	t.Parallel()

	tree := From(3, 1, 2)
	assert.Equal(t, []any{1, 2, 3}, tree.Values())
	tree.Clear()
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Size())
	assert.True(t, tree.Insert(3))
}

func TestBST_LevelOrderShape(t *testing.T) {
	t.Parallel()

	tree := From(demoValues...)
	var vs, ds []int
	tree.LevelOrder(func(v, d int) bool {
		vs, ds = append(vs, v), append(ds, d)
		return true
	})
	assert.Equal(t, []int{10, 4, 23, 56, 33, 73, 44, 38}, vs)
	assert.Equal(t, []int{0, 1, 1, 2, 3, 3, 4, 5}, ds)

	vs = vs[:0]
	tree.LevelOrder(func(v, _ int) bool {
		vs = append(vs, v)
		return len(vs) < 3
	})
	assert.Equal(t, []int{10, 4, 23}, vs)
}

func TestBST_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, From(2, 1, 3).Print(&buf))
	assert.Equal(t, "BST\n2\n├── L:1\n└── R:3\n", buf.String())
}

func TestBST_Corrupt(t *testing.T) {
	t.Parallel()

	tree := From(demoValues...)
	require.False(t, tree.Corrupt())

	tree.root.l.v = 11 // 11 in the left subtree of 10
	assert.True(t, tree.Corrupt())
	tree.root.l.v = 4

	tree.sz++
	assert.True(t, tree.Corrupt())
	tree.sz--

	tree.root.l.r = tree.root.r // 23 reachable from two parents
	assert.True(t, tree.Corrupt())
	tree.root.l.r = tree.nilPtr
	assert.False(t, tree.Corrupt())
}
