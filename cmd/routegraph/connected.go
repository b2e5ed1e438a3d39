package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/routegraph/connectivity"
	"github.com/katalvlaran/routegraph/ingest"
	"github.com/katalvlaran/routegraph/report"
)

func (a *app) connectedCmd() *cobra.Command {
	var (
		target     string
		attrColumn int
		minColumns int
	)
	cmd := &cobra.Command{
		Use:   "connected [entities-file]",
		Short: "List the entities connected to a target attribute value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return fmt.Errorf("%w: --target", errMissingFlag)
			}
			path, err := inputPath(args, a.cfg.Input.Entities)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("attribute-column") {
				attrColumn = a.cfg.Input.AttributeColumn
			}
			if !cmd.Flags().Changed("min-columns") {
				minColumns = a.cfg.Input.MinColumns
			}

			a.logInput("entities", path)
			entities, err := ingest.LoadEntities(path,
				ingest.WithLogger(a.log),
				ingest.WithAttributeColumn(attrColumn),
				ingest.WithMinColumns(minColumns))
			if err != nil {
				return err
			}

			net := connectivity.NewNetwork(entities)
			a.log.Info("network built",
				zap.String("entities", count(net.Len())),
				zap.String("groups", count(net.Groups())),
				zap.String("links", count(net.Graph().EdgeCount())))

			found := connectivity.NewDetector(net).FindConnected(entities, target)
			a.log.Info("connected entities found",
				zap.String("target", target),
				zap.String("found", count(len(found))))

			return report.WriteConnected(cmd.OutOrStdout(), target, found)
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "Attribute value to search for (case-insensitive)")
	cmd.Flags().IntVar(&attrColumn, "attribute-column", ingest.DefaultAttributeColumn, "0-based column of the grouping attribute")
	cmd.Flags().IntVar(&minColumns, "min-columns", ingest.DefaultMinColumns, "Rows with fewer columns are skipped")

	return cmd
}
