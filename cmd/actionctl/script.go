package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gonewx/actionkit/pkg/actions"
	"github.com/gonewx/actionkit/pkg/config"
	"github.com/gonewx/actionkit/pkg/game"
)

// scriptSource 命令要运行的脚本：文件中的具名脚本或已保存的预设
type scriptSource struct {
	name string
	spec config.ActionSpec
}

// addScriptFlags 注册 --script 和 --preset
func addScriptFlags(cmd *cobra.Command) {
	cmd.Flags().String("script", "", "Script name inside the library file")
	cmd.Flags().String("preset", "", "Run a stored preset instead of a file script")
	addStoreFlags(cmd)
}

// loadScript 根据参数和 flags 找到要运行的脚本
func loadScript(cmd *cobra.Command, args []string) (*scriptSource, error) {
	presetName, _ := cmd.Flags().GetString("preset")
	scriptName, _ := cmd.Flags().GetString("script")

	if presetName != "" {
		if len(args) > 0 || scriptName != "" {
			return nil, fmt.Errorf("--preset cannot be combined with a file or --script")
		}
		store, err := openStore(cmd)
		if err != nil {
			return nil, err
		}
		spec, err := store.Load(presetName)
		if err != nil {
			return nil, err
		}
		return &scriptSource{name: presetName, spec: spec}, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("a library file is required (or use --preset)")
	}
	if scriptName == "" {
		return nil, fmt.Errorf("--script is required")
	}

	lib, err := config.LoadActionLibrary(args[0])
	if err != nil {
		return nil, err
	}
	script, ok := lib.Script(scriptName)
	if !ok {
		return nil, fmt.Errorf("script %q not found in %s (available: %v)", scriptName, args[0], lib.Names())
	}
	return &scriptSource{name: script.Name, spec: script.Action}, nil
}

// callbackRecorder 记录模拟过程中触发的 call 动作
type callbackRecorder struct {
	pending []string
	events  []callbackEvent
}

type callbackEvent struct {
	frame int
	time  float64
	name  string
}

func (r *callbackRecorder) callbacks(spec *config.ActionSpec) map[string]func() {
	callbacks := make(map[string]func())
	for _, name := range spec.Callbacks() {
		callbacks[name] = func() { r.pending = append(r.pending, name) }
	}
	return callbacks
}

// flush 把本帧触发的回调归到 frame 上
func (r *callbackRecorder) flush(f game.Frame) {
	for _, name := range r.pending {
		r.events = append(r.events, callbackEvent{frame: f.Index, time: f.Time, name: name})
	}
	r.pending = r.pending[:0]
}

// build 构建脚本模板，call 动作由 recorder 接管
func (s *scriptSource) build(r *callbackRecorder) (actions.Action, error) {
	return config.BuildSpec(&s.spec, s.name, r.callbacks(&s.spec))
}

// simulationOptions 读取 --dt / --max-frames / --x / --y
func simulationOptions(cmd *cobra.Command) game.SimulationOptions {
	opts := game.DefaultSimulationOptions()
	opts.DeltaTime, _ = cmd.Flags().GetFloat64("dt")
	opts.MaxFrames, _ = cmd.Flags().GetInt("max-frames")
	opts.Start.X, _ = cmd.Flags().GetFloat64("x")
	opts.Start.Y, _ = cmd.Flags().GetFloat64("y")
	return opts
}

func addSimulationFlags(cmd *cobra.Command) {
	defaults := game.DefaultSimulationOptions()
	cmd.Flags().Float64("dt", defaults.DeltaTime, "Seconds per simulated frame")
	cmd.Flags().Int("max-frames", defaults.MaxFrames, "Stop after this many frames (needed for loops)")
	cmd.Flags().Float64("x", 0, "Initial node x position")
	cmd.Flags().Float64("y", 0, "Initial node y position")
}
