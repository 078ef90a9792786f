package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sumCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum <input>...",
		Short: "Adds inputs, failing if the total does not fit",
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := a.calc.Sum(cmd.Context(), args...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)

			return err
		},
	}

	return cmd
}
