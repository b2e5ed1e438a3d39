// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: whitespace-delimited edge-list reader feeding core.Graph.

package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/routegraph/core"
)

var (
	// ErrMissingFields is the cause of a LineError for a row with fewer than
	// three fields.
	ErrMissingFields = errors.New("ingest: expected \"origin destination weight\"")

	// ErrBadWeight is the cause of a LineError for a weight that is not an integer.
	ErrBadWeight = errors.New("ingest: weight is not an integer")
)

// LineError reports a malformed input row. Line is 1-based and counts the
// header line.
type LineError struct {
	Line int
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("ingest: line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LineError) Unwrap() error { return e.Err }

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadEdgeList builds an undirected graph from r.
//
// The first line is a header and is discarded. Every following non-blank line
// holds "origin destination weight" separated by whitespace; fields past the
// third are ignored. Any malformed line aborts the read with a *LineError and
// no graph.
func ReadEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, &LineError{Line: line, Err: ErrMissingFields}
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, &LineError{Line: line, Err: fmt.Errorf("%w: %q", ErrBadWeight, fields[2])}
		}
		if _, err = g.AddEdge(fields[0], fields[1], w); err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read edge list: %w", err)
	}

	return g, nil
}

// LoadEdgeList opens path and reads it with ReadEdgeList.
func LoadEdgeList(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open edge list: %w", err)
	}
	defer f.Close()

	g, err := ReadEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
