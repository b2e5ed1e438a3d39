// Package report renders routegraph results as text.
//
// Every writer returns the first write error it hits and nothing else; the
// formats are stable and meant to be read by people and simple scripts.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/routegraph/connectivity"
	"github.com/katalvlaran/routegraph/dijkstra"
)

// DefaultMSTFile is the file SaveMSTCost writes when no path is configured.
const DefaultMSTFile = "mst_output.txt"

// Unreachable is printed in place of an infinite distance.
const Unreachable = "INF"

// WriteMSTCost writes "Total cost of MST: N".
func WriteMSTCost(w io.Writer, total int64) error {
	_, err := fmt.Fprintf(w, "Total cost of MST: %d\n", total)

	return err
}

// SaveMSTCost writes the MST cost line to path, replacing any previous file.
func SaveMSTCost(path string, total int64) error {
	if path == "" {
		path = DefaultMSTFile
	}
	var b strings.Builder
	_ = WriteMSTCost(&b, total)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("report: save MST cost: %w", err)
	}

	return nil
}

// WriteTable renders the full distance matrix of t. Rows are origins and
// columns destinations, both in vertex discovery order.
func WriteTable(w io.Writer, t *dijkstra.Table) error {
	vertices := t.Vertices()

	ew := &errWriter{w: w}
	tw := tablewriter.NewWriter(ew)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetHeader(append([]string{`From\To`}, vertices...))

	for _, origin := range vertices {
		row := make([]string, len(vertices)+1)
		row[0] = origin
		for j, dest := range vertices {
			row[j+1] = formatDistance(t.Distance(origin, dest))
		}
		tw.Append(row)
	}
	tw.Render()

	return ew.err
}

// errWriter remembers the first write error; later writes are dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err

	return n, err
}

// formatDistance prints d, or Unreachable for Infinity.
func formatDistance(d int64) string {
	if d == dijkstra.Infinity {
		return Unreachable
	}

	return strconv.FormatInt(d, 10)
}

// WritePath reports the shortest route from origin to destination, or that
// none exists.
func WritePath(w io.Writer, t *dijkstra.Table, origin, destination string) error {
	if !t.Reachable(origin, destination) {
		_, err := fmt.Fprintf(w, "No path found between %s and %s\n", origin, destination)

		return err
	}
	_, err := fmt.Fprintf(w,
		"Shortest path distance from %s to %s is: %d\nPath taken: %s\n",
		origin, destination, t.Distance(origin, destination),
		strings.Join(t.Path(origin, destination), " -> "))

	return err
}

// WriteConnected lists the entities found for target, one per line.
func WriteConnected(w io.Writer, target string, entities []connectivity.Entity) error {
	if len(entities) == 0 {
		_, err := fmt.Fprintf(w, "No connected users found in %s.\n", target)

		return err
	}
	if _, err := fmt.Fprintf(w, "Connected users in %s:\n", target); err != nil {
		return err
	}
	for _, e := range entities {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}

	return nil
}
