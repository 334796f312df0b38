package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docstyle/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default docstyle.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path, err := project.WriteDefault(dir)
		if err != nil {
			return err
		}
		isQuiet, err := quiet(cmd)
		if err != nil {
			return err
		}
		if !isQuiet {
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
		}
		return nil
	},
}
