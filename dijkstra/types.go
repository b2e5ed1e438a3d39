// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm and the all-pairs Table.
//
// Options (single run):
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay at Infinity.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Options (table):
//
//	– WithWorkers(n):      number of concurrent single-source runs (default 1).
//	– WithRunOptions(...): per-run options applied to every origin.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrBadWorkers      if WithWorkers received n < 1.
package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance reported for unreachable vertices.
// core.AddEdge never accepts it as a weight.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadWorkers indicates a table worker count below one.
	ErrBadWorkers = errors.New("dijkstra: workers must be at least 1")
)

// Options configures a single Dijkstra run.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – cap on distances to explore. Must be ≥ 0. Default Infinity.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default Infinity (no obstacles).
type Options struct {
	Source           string // The ID of the source vertex
	ReturnPath       bool   // Whether to return the predecessor map
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max keep Infinity.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Panics with ErrBadInfThreshold on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no caps and no
// predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// TableOption configures BuildTable.
type TableOption func(*tableOptions)

type tableOptions struct {
	workers int
	run     []Option
}

// WithWorkers sets how many single-source runs may execute concurrently.
// Each run owns its frontier and maps; the graph is only read.
func WithWorkers(n int) TableOption {
	return func(o *tableOptions) {
		o.workers = n
	}
}

// WithRunOptions applies opts to every single-source run of the table.
// Source and WithReturnPath are always set by BuildTable itself.
func WithRunOptions(opts ...Option) TableOption {
	return func(o *tableOptions) {
		o.run = append(o.run, opts...)
	}
}
