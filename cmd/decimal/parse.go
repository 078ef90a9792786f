package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func parseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Prints the canonical form, coefficient and scale of an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.calc.Parse(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\t%v\n", d, d.Coef(), d.Scale())

			return err
		},
	}

	return cmd
}
