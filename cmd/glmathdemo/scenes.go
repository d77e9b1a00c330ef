package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/glmath/scene"
)

func newScenesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the registered scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range scene.Available() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
