package main

import (
	"log/slog"

	"github.com/g-m-twostay/go-bst/Trees"
)

// step is the outcome of one tree operation.
type step struct {
	Op    string
	Value int
	OK    bool
}

// report collects what a replay did to the tree.
type report struct {
	Steps  []step
	Sorted []int
	Height int
	Shape  string
}

// Operation names used in steps and log records.
const (
	opInsert   = "insert"
	opContains = "contains"
	opRemove   = "remove"
)

// replay builds a tree from c.Insert, queries c.Query, removes c.Remove and
// queries c.Query again.
func replay(c *Config, logger *slog.Logger) report {
	tree := Trees.New[int]()

	var rep report

	record := func(op string, v int, ok bool) {
		rep.Steps = append(rep.Steps, step{Op: op, Value: v, OK: ok})
		logger.Debug("tree operation", "op", op, "value", v, "ok", ok)
	}

	for _, v := range c.Insert {
		record(opInsert, v, tree.Insert(v))
	}

	for _, v := range c.Query {
		record(opContains, v, tree.Has(v))
	}

	for _, v := range c.Remove {
		record(opRemove, v, tree.Remove(v))
	}

	for _, v := range c.Query {
		record(opContains, v, tree.Has(v))
	}

	rep.Sorted = tree.Sorted()
	rep.Height = tree.Height()
	rep.Shape = tree.String()

	logger.Info("replay finished", "steps", len(rep.Steps), "size", tree.Size(), "height", rep.Height)

	return rep
}
