package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/routegraph/ingest"
	"github.com/katalvlaran/routegraph/prim_kruskal"
	"github.com/katalvlaran/routegraph/report"
)

func (a *app) mstCmd() *cobra.Command {
	var (
		root   string
		out    string
		method string
	)
	cmd := &cobra.Command{
		Use:   "mst [edges-file]",
		Short: "Print and save the total cost of a minimum spanning tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := inputPath(args, a.cfg.Input.Edges)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("root") {
				root = a.cfg.Engine.Root
			}
			if !cmd.Flags().Changed("out") {
				out = a.cfg.Output.MST
			}

			a.logInput("edges", path)
			g, err := ingest.LoadEdgeList(path)
			if err != nil {
				return err
			}
			a.log.Info("graph loaded",
				zap.String("vertices", count(g.VertexCount())),
				zap.String("edges", count(g.EdgeCount())))

			opts := prim_kruskal.NewOptions(
				prim_kruskal.WithMethod(method),
				prim_kruskal.WithRoot(root))
			edges, total, err := prim_kruskal.Compute(g, opts)
			if err != nil {
				return err
			}
			a.log.Info("spanning tree computed",
				zap.String("method", method),
				zap.String("tree_edges", count(len(edges))),
				zap.Int64("total", total))

			if err = report.WriteMSTCost(cmd.OutOrStdout(), total); err != nil {
				return err
			}
			if out == "" {
				return nil
			}
			if err = report.SaveMSTCost(out, total); err != nil {
				return err
			}
			a.log.Debug("MST cost saved", zap.String("path", out))

			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "Start vertex for Prim (default: first vertex read)")
	cmd.Flags().StringVar(&out, "out", report.DefaultMSTFile, "File receiving the cost line; empty to skip")
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodPrim, "prim or kruskal")

	return cmd
}
