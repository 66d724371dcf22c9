package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/gonewx/actionkit/pkg/game"
)

// ReverseCommand 返回 "reverse" 命令
func ReverseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reverse [file]",
		Short: "Run a script, then its reverse, and compare node states",
		Long: "Run a script on a headless node, then run its Reverse() on the same node,\n" +
			"printing the start, forward and final states. For reversible relative\n" +
			"actions the final state matches the start state.\n\n" +
			"Examples:\n" +
			"  actionctl reverse scripts.yaml --script spin_back",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runReverse,
		SilenceUsage: true,
	}

	addScriptFlags(cmd)
	addSimulationFlags(cmd)

	return cmd
}

func runReverse(cmd *cobra.Command, args []string) error {
	src, err := loadScript(cmd, args)
	if err != nil {
		return err
	}
	recorder := &callbackRecorder{}
	template, err := src.build(recorder)
	if err != nil {
		return err
	}
	reversed, err := template.Reverse()
	if err != nil {
		return fmt.Errorf("%s cannot be reversed: %w", src.name, err)
	}

	sim, err := game.NewSimulation(simulationOptions(cmd))
	if err != nil {
		return err
	}

	start := sim.State()
	forward, err := sim.Run(template, nil)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", src.name, err)
	}
	mid := sim.State()
	backward, err := sim.Run(reversed, nil)
	if err != nil {
		return fmt.Errorf("failed to run reversed %s: %w", src.name, err)
	}
	end := sim.State()

	printState(cmd, "start", start)
	printState(cmd, "forward", mid)
	printState(cmd, "reversed", end)

	out := cmd.OutOrStdout()
	if !forward.Done || !backward.Done {
		fmt.Fprintln(out, styled(cmd, failStyle, "not finished")+" within --max-frames, states are partial")
	}
	if statesMatch(start, end) {
		fmt.Fprintln(out, styled(cmd, okStyle, "restored"))
	} else {
		fmt.Fprintln(out, styled(cmd, failStyle, "differs")+" from start state")
	}
	return nil
}

// statesMatch 位置、角度、缩放、透明度和可见性都一致
func statesMatch(a, b game.NodeState) bool {
	const eps = 1e-6
	return a.Position.ApproxEqual(b.Position, eps) &&
		math.Abs(a.Rotation-b.Rotation) <= eps &&
		a.Scale.ApproxEqual(b.Scale, eps) &&
		math.Abs(a.Opacity-b.Opacity) <= eps &&
		a.Visible == b.Visible
}
