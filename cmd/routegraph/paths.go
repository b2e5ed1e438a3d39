package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/routegraph/dijkstra"
	"github.com/katalvlaran/routegraph/ingest"
	"github.com/katalvlaran/routegraph/report"
)

func (a *app) pathsCmd() *cobra.Command {
	var (
		from    string
		to      string
		workers int
		noTable bool
	)
	cmd := &cobra.Command{
		Use:   "paths [edges-file]",
		Short: "Print the all-pairs shortest-path table and, optionally, one route",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (from == "") != (to == "") {
				return fmt.Errorf("%w: --from and --to go together", errMissingFlag)
			}
			path, err := inputPath(args, a.cfg.Input.Edges)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Engine.Workers
			}

			a.logInput("edges", path)
			g, err := ingest.LoadEdgeList(path)
			if err != nil {
				return err
			}
			a.log.Info("graph loaded",
				zap.String("vertices", count(g.VertexCount())),
				zap.String("edges", count(g.EdgeCount())))

			table, err := dijkstra.BuildTable(cmd.Context(), g, dijkstra.WithWorkers(workers))
			if err != nil {
				return err
			}
			a.log.Info("shortest-path table built",
				zap.String("rows", count(table.Len())),
				zap.Int("workers", workers))

			w := cmd.OutOrStdout()
			if !noTable {
				if _, err = fmt.Fprintln(w, "Shortest Path Table:"); err != nil {
					return err
				}
				if err = report.WriteTable(w, table); err != nil {
					return err
				}
			}
			if from == "" {
				return nil
			}

			return report.WritePath(w, table, from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Origin of the route to print")
	cmd.Flags().StringVar(&to, "to", "", "Destination of the route to print")
	cmd.Flags().IntVar(&workers, "workers", 1, "Concurrent single-source runs")
	cmd.Flags().BoolVar(&noTable, "no-table", false, "Skip the full distance matrix")

	return cmd
}
