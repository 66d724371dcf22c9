package main

import (
	"github.com/spf13/cobra"
)

// NewRootCommand 返回 actionctl 根命令
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actionctl",
		Short: "Validate, simulate and store action scripts",
		Long: `actionctl works with YAML action scripts: trees of timed and instant
actions (move, rotate, scale, fade, blink, delay) combined with sequence,
spawn, repeat, loop and re-timing wrappers.

Quick start:
  actionctl validate scripts.yaml                  # build every script
  actionctl simulate scripts.yaml --script bounce  # print a frame trace
  actionctl reverse scripts.yaml --script bounce   # run a script then its reverse
  actionctl preset list                            # show stored presets`,
		SilenceUsage: true,
	}

	cmd.AddCommand(ValidateCommand())
	cmd.AddCommand(SimulateCommand())
	cmd.AddCommand(ReverseCommand())
	cmd.AddCommand(PresetCommand())

	return cmd
}
