package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dpkgview/pkg/errors"
	"github.com/matzehuels/dpkgview/pkg/graph"
)

func (c *CLI) graphCommand() *cobra.Command {
	var (
		format    string
		output    string
		summaries bool
	)

	cmd := &cobra.Command{
		Use:   "graph [package]",
		Short: "Export the dependency graph as JSON, DOT or SVG",
		Long: `Graph exports the dependency graph of every package in the status file.
With a package argument only that package, its dependencies and its dependents
are exported. Dependencies no stanza provides are drawn as missing nodes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, formatJSON, formatDOT, formatSVG); err != nil {
				return err
			}
			var focus string
			if len(args) == 1 {
				focus = args[0]
				if err := errors.ValidatePackageName(focus); err != nil {
					return err
				}
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, ch, err := c.newService(ctx, cfg)
			if err != nil {
				return err
			}
			defer ch.Close()

			records, err := svc.Records(ctx)
			if err != nil {
				return err
			}
			g := graph.FromRecords(records)
			if focus != "" {
				sub, ok := g.Neighborhood(focus)
				if !ok {
					return errors.New(errors.ErrCodeNotFound, "package %q is not in %s", focus, cfg.StatusPath)
				}
				g = sub
			}
			loggerFromContext(ctx).Debug("built graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())

			var buf bytes.Buffer
			switch format {
			case formatJSON:
				if err := graph.WriteJSON(g, &buf); err != nil {
					return err
				}
			case formatDOT:
				buf.WriteString(graph.ToDOT(g, graph.DOTOptions{Highlight: focus, Summaries: summaries}))
			case formatSVG:
				spin := startSpinner(ctx, fmt.Sprintf("Rendering %d packages...", g.NodeCount()))
				svg, err := graph.RenderSVG(ctx, graph.ToDOT(g, graph.DOTOptions{Highlight: focus, Summaries: summaries}))
				if err != nil {
					spin.Fail("Rendering failed")
					return err
				}
				spin.Stop()
				buf.Write(svg)
			}

			return writeOutput(cmd.OutOrStdout(), output, buf.Bytes())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&summaries, "summaries", false, "include package summaries in DOT/SVG labels")
	return cmd
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Wrote graph")
	printFile(path)
	return nil
}
