package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/hitfilter/internal/domain/pattern"
)

func splitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <input> <delimiter-regex>",
		Short: "Split input on a regular expression, one quoted segment per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := pattern.Split(args[0], args[1])
			if err != nil {
				return err
			}
			for _, p := range parts {
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n", p)
			}
			return nil
		},
	}
}
