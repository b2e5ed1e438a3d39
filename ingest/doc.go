// Package ingest reads the two input formats of routegraph.
//
// Edge lists are plain text: a header line followed by one
// "origin destination weight" row per line. ReadEdgeList returns a
// core.Graph, or a *LineError naming the first bad row.
//
// Entity files are CSV with a header row. ReadEntities returns one
// connectivity.Entity per usable row; short rows and rows with a
// non-integer ID are skipped and reported through an optional zap logger.
package ingest
