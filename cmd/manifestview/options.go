package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottbass3/manifestview/internal/filter"
)

func newOptionsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options <dimension>",
		Short: "Print the values a filter dimension can take in the current feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := a.cliLogger()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			view, err := a.loadView(cmd.Context(), log)
			if err != nil {
				return err
			}
			dims := make([]filter.Dimension, 0, len(view.sync.Controls()))
			for _, control := range view.sync.Controls() {
				dims = append(dims, control.Dimension)
			}
			dim, ok := filter.Find(dims, args[0])
			if !ok {
				return fmt.Errorf("%w: %s", filter.ErrUnknownDimension, args[0])
			}
			control, _ := view.sync.Control(dim.Name)
			out := cmd.OutOrStdout()
			for _, option := range control.Options {
				if option == filter.AllOption {
					continue
				}
				fmt.Fprintln(out, option)
			}
			return nil
		},
	}
}
