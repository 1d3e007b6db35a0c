package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dpkgview/pkg/errors"
)

func (c *CLI) showCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <package>",
		Short: "Show a package with its dependencies and dependents",
		Long: `Show prints a package's summary and description, the packages it depends
on (marked by whether the status file provides them) and every package that
depends on it.

Unknown names are not an error: the result is empty apart from any packages
that still declare a dependency on the name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := errors.ValidatePackageName(name); err != nil {
				return err
			}
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
			detail, err := svc.Detail(ctx, name)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Resolved %s", name))

			w := cmd.OutOrStdout()
			if format != formatText {
				return writeStructured(w, format, detail)
			}
			writeDetail(w, name, detail)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml")
	return cmd
}
