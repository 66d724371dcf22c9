package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gonewx/actionkit/pkg/game"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// styled 仅在输出到终端时着色，重定向或测试时输出纯文本
func styled(cmd *cobra.Command, style lipgloss.Style, s string) string {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return style.Render(s)
	}
	return s
}

// frameRecord JSON 输出中的一帧
type frameRecord struct {
	Frame    int     `json:"frame"`
	Time     float64 `json:"time"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	ScaleX   float64 `json:"scale_x"`
	ScaleY   float64 `json:"scale_y"`
	Opacity  float64 `json:"opacity"`
	Visible  bool    `json:"visible"`
	Done     bool    `json:"done"`
}

func toRecord(f game.Frame) frameRecord {
	return frameRecord{
		Frame:    f.Index,
		Time:     f.Time,
		X:        f.State.Position.X,
		Y:        f.State.Position.Y,
		Rotation: f.State.Rotation,
		ScaleX:   f.State.Scale.X,
		ScaleY:   f.State.Scale.Y,
		Opacity:  f.State.Opacity,
		Visible:  f.State.Visible,
		Done:     f.Done,
	}
}

// printFramesJSON 以缩进 JSON 输出帧列表
func printFramesJSON(cmd *cobra.Command, frames []game.Frame) error {
	records := make([]frameRecord, len(frames))
	for i, f := range frames {
		records[i] = toRecord(f)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// printFramesTable 以对齐的表格输出帧列表
func printFramesTable(cmd *cobra.Command, frames []game.Frame) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "FRAME\tTIME\tX\tY\tROT\tSX\tSY\tOPACITY\tVISIBLE\t")
	for _, f := range frames {
		s := f.State
		fmt.Fprintf(w, "%d\t%.3f\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\t%.3f\t%v\t\n",
			f.Index, f.Time, s.Position.X, s.Position.Y, s.Rotation, s.Scale.X, s.Scale.Y, s.Opacity, s.Visible)
	}
	w.Flush()
}

// printState 输出节点的单行状态
func printState(cmd *cobra.Command, label string, s game.NodeState) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-8s pos=%s rot=%.2f scale=%s opacity=%.3f visible=%v\n",
		label+":", s.Position, s.Rotation, s.Scale, s.Opacity, s.Visible)
}
