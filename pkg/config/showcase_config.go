package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ShowcaseConfig 动作展示程序的配置
//
// 同一个文件里既有窗口和节点布局，也有节点引用的动作脚本。
type ShowcaseConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Playback PlaybackConfig `yaml:"playback"`
	Nodes    []NodeConfig   `yaml:"nodes"`

	ActionLibrary `yaml:",inline"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // "#rrggbb"
}

// PlaybackConfig 播放配置
type PlaybackConfig struct {
	TPS     int     `yaml:"tps"`     // 游戏目标 TPS（Ticks Per Second）
	Speed   float64 `yaml:"speed"`   // 全局时间倍率
	Verbose bool    `yaml:"verbose"` // 记录每个动作的开始和结束
}

// NodeConfig 一个展示节点
type NodeConfig struct {
	ID     string  `yaml:"id"`
	Script string  `yaml:"script"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Size   int     `yaml:"size"`
	Color  string  `yaml:"color"` // "#rrggbb" 或 "#rrggbbaa"
}

// LoadShowcaseConfig 从文件加载展示配置
func LoadShowcaseConfig(path string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return ParseShowcaseConfig(data)
}

// ParseShowcaseConfig 解析展示配置，填充默认值并验证
func ParseShowcaseConfig(data []byte) (*ShowcaseConfig, error) {
	var cfg ShowcaseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}
	return &cfg, nil
}

func (c *ShowcaseConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 600
	}
	if c.Window.Title == "" {
		c.Window.Title = "Action Showcase"
	}
	if c.Window.Background == "" {
		c.Window.Background = "#202028"
	}
	if c.Playback.TPS == 0 {
		c.Playback.TPS = 60 // 默认 60 TPS
	}
	if c.Playback.Speed == 0 {
		c.Playback.Speed = 1.0
	}
	for i := range c.Nodes {
		if c.Nodes[i].Size == 0 {
			c.Nodes[i].Size = 32
		}
		if c.Nodes[i].Color == "" {
			c.Nodes[i].Color = "#ffffff"
		}
	}
}

// Validate 检查节点引用的脚本存在、颜色合法
func (c *ShowcaseConfig) Validate() error {
	if c.Playback.TPS < 0 || c.Playback.Speed < 0 {
		return fmt.Errorf("playback: tps and speed must not be negative")
	}
	if len(c.Nodes) == 0 {
		return fmt.Errorf("no nodes defined")
	}
	if err := c.ActionLibrary.Validate(); err != nil {
		return err
	}
	if _, err := ParseColor(c.Window.Background); err != nil {
		return fmt.Errorf("window.background: %w", err)
	}

	for i, n := range c.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node #%d: missing id", i)
		}
		if _, ok := c.Script(n.Script); !ok {
			return fmt.Errorf("node %q: unknown script %q", n.ID, n.Script)
		}
		if n.Size < 0 {
			return fmt.Errorf("node %q: size must not be negative", n.ID)
		}
		if _, err := ParseColor(n.Color); err != nil {
			return fmt.Errorf("node %q: %w", n.ID, err)
		}
	}
	return nil
}

// ParseColor 解析 "#rrggbb" 或 "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
