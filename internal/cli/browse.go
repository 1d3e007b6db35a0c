package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse packages interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			names, err := svc.Names(ctx)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("No packages in %s", cfg.StatusPath)
				return nil
			}

			model := NewBrowseModel(ctx, names, svc.Detail)
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}
