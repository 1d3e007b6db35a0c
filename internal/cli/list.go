package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dpkgview/pkg/errors"
)

func (c *CLI) listCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every package name in the status file",
		Long: `List prints the name of every stanza in the status file, in file order.
Duplicate stanzas are listed as often as they occur; nothing is sorted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
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

			prog := newProgress(loggerFromContext(ctx))
			names, err := svc.Names(ctx)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Listed %d packages", len(names)))

			w := cmd.OutOrStdout()
			if format != formatText {
				return writeStructured(w, format, names)
			}
			for _, name := range names {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml")
	return cmd
}
