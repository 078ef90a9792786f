package main

import (
	"errors"
	"fmt"

	"github.com/inventar/decimal/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errInvalidInput = errors.New("some inputs are invalid")

func validateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <input>...",
		Short: "Reports whether each input is an acceptable decimal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			invalid := 0
			for _, r := range a.calc.Validate(ctx, args...) {
				verdict := "valid"
				if !r.Valid {
					verdict = "invalid"
					invalid++
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Input, verdict); err != nil {
					return err
				}
			}

			if invalid > 0 {
				logger.Info(ctx, "validation failed", zap.Int("invalid", invalid), zap.Int("total", len(args)))
				return errInvalidInput
			}

			return nil
		},
	}

	return cmd
}
