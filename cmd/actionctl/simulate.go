package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gonewx/actionkit/pkg/game"
)

// SimulateCommand 返回 "simulate" 命令
func SimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [file]",
		Short: "Run a script on a headless node and print a frame trace",
		Long: "Run a script on a single headless node, stepping it with a fixed frame\n" +
			"time, and print the node state after each frame.\n\n" +
			"Scripts that never finish (loop) stop after --max-frames.\n\n" +
			"Examples:\n" +
			"  actionctl simulate scripts.yaml --script bounce\n" +
			"  actionctl simulate scripts.yaml --script bounce --dt 0.05 --every 4\n" +
			"  actionctl simulate --preset shake -o json",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runSimulate,
		SilenceUsage: true,
	}

	addScriptFlags(cmd)
	addSimulationFlags(cmd)
	cmd.Flags().Int("every", 1, "Print every Nth frame (the last frame is always printed)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	every, _ := cmd.Flags().GetInt("every")
	output, _ := cmd.Flags().GetString("output")
	if every < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", every)
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unknown output format %q (valid: table, json)", output)
	}

	src, err := loadScript(cmd, args)
	if err != nil {
		return err
	}
	recorder := &callbackRecorder{}
	template, err := src.build(recorder)
	if err != nil {
		return err
	}

	sim, err := game.NewSimulation(simulationOptions(cmd))
	if err != nil {
		return err
	}

	var frames []game.Frame
	last, err := sim.Run(template, func(f game.Frame) {
		recorder.flush(f)
		if f.Index%every == 0 {
			frames = append(frames, f)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", src.name, err)
	}
	if last.Index%every != 0 {
		frames = append(frames, last)
	}

	if output == "json" {
		return printFramesJSON(cmd, frames)
	}

	out := cmd.OutOrStdout()
	printFramesTable(cmd, frames)
	for _, ev := range recorder.events {
		fmt.Fprintf(out, "call %q at frame %d (t=%.3f)\n", ev.name, ev.frame, ev.time)
	}
	if last.Done {
		fmt.Fprintf(out, "%s finished after %.3fs (%d frames)\n", src.name, last.Time, last.Index)
	} else {
		fmt.Fprintf(out, "%s still running after %.3fs (%d frames), stopped\n", src.name, last.Time, last.Index)
	}
	return nil
}
