package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cmpCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Prints -1, 0 or 1 as a is less than, equal to or greater than b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calc.Compare(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)

			return err
		},
	}

	return cmd
}
