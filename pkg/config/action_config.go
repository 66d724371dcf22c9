package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/actionkit/pkg/actions"
	"github.com/gonewx/actionkit/pkg/types"
)

// ActionSpec 动作树的 YAML 描述
//
// 不同 type 使用的字段：
//   - place / move_by / move_to: x, y（move 系列还需要 duration）
//   - rotate_by / rotate_to: angle, duration
//   - scale_by / scale_to: factor（统一缩放）或 x, y；duration
//   - fade_to: opacity, duration；fade_in / fade_out / delay: duration
//   - blink: times, duration；random_delay: min, max
//   - call: callback（由 Build 的 callbacks 提供）
//   - speed: factor；accelerate / accel_deccel: rate；ease: ease（函数名）
//   - speed / accelerate / accel_deccel / ease / repeat / loop / reverse: child
//   - sequence / spawn: children；repeat: times
type ActionSpec struct {
	Type     string  `yaml:"type"`
	Duration float64 `yaml:"duration,omitempty"`

	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	Angle   float64 `yaml:"angle,omitempty"`
	Opacity float64 `yaml:"opacity,omitempty"`
	Factor  float64 `yaml:"factor,omitempty"`
	Rate    float64 `yaml:"rate,omitempty"`
	Times   int     `yaml:"times,omitempty"`
	Min     float64 `yaml:"min,omitempty"`
	Max     float64 `yaml:"max,omitempty"`

	Ease     string `yaml:"ease,omitempty"`
	Callback string `yaml:"callback,omitempty"`

	Child    *ActionSpec  `yaml:"child,omitempty"`
	Children []ActionSpec `yaml:"children,omitempty"`
}

// ScriptConfig 一个具名的动作脚本
type ScriptConfig struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Action      ActionSpec `yaml:"action"`
}

// ActionLibrary 动作脚本库（一个 YAML 文件）
type ActionLibrary struct {
	Scripts []ScriptConfig `yaml:"scripts"`
}

// easeFuncs YAML 中可用的缓动函数名
var easeFuncs = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"in_sine":        ease.InSine,
	"out_sine":       ease.OutSine,
	"in_out_sine":    ease.InOutSine,
	"in_expo":        ease.InExpo,
	"out_expo":       ease.OutExpo,
	"in_out_expo":    ease.InOutExpo,
	"in_back":        ease.InBack,
	"out_back":       ease.OutBack,
	"in_out_back":    ease.InOutBack,
	"in_elastic":     ease.InElastic,
	"out_elastic":    ease.OutElastic,
	"in_out_elastic": ease.InOutElastic,
	"in_bounce":      ease.InBounce,
	"out_bounce":     ease.OutBounce,
	"in_out_bounce":  ease.InOutBounce,
}

// EaseNames 返回所有可用的缓动函数名（已排序）
func EaseNames() []string {
	names := make([]string, 0, len(easeFuncs))
	for name := range easeFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadActionLibrary 从 YAML 文件加载动作脚本库
//
// 参数：
//   - path: 脚本文件路径
//
// 返回：
//   - *ActionLibrary: 已验证的脚本库（每个脚本都能成功构建）
//   - error: 读取、解析或验证错误
func LoadActionLibrary(path string) (*ActionLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read action library %s: %w", path, err)
	}

	lib, err := ParseActionLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("action library %s: %w", path, err)
	}
	return lib, nil
}

// ParseActionLibrary 解析并验证 YAML 格式的动作脚本库
func ParseActionLibrary(data []byte) (*ActionLibrary, error) {
	var lib ActionLibrary
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse action library: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Validate 检查脚本名唯一并逐个试构建
//
// 验证时 call 动作的回调名不要求已注册（回调由运行方提供）。
func (l *ActionLibrary) Validate() error {
	if len(l.Scripts) == 0 {
		return fmt.Errorf("no scripts defined")
	}

	seen := make(map[string]bool, len(l.Scripts))
	for i, script := range l.Scripts {
		if script.Name == "" {
			return fmt.Errorf("script #%d: missing name", i)
		}
		if seen[script.Name] {
			return fmt.Errorf("script %q: duplicate name", script.Name)
		}
		seen[script.Name] = true

		if _, err := buildSpec(&script.Action, script.Name, nil, false); err != nil {
			return err
		}
	}
	return nil
}

// Names 按文件中的顺序返回脚本名
func (l *ActionLibrary) Names() []string {
	names := make([]string, len(l.Scripts))
	for i, s := range l.Scripts {
		names[i] = s.Name
	}
	return names
}

// Script 按名称查找脚本
func (l *ActionLibrary) Script(name string) (*ScriptConfig, bool) {
	for i := range l.Scripts {
		if l.Scripts[i].Name == name {
			return &l.Scripts[i], true
		}
	}
	return nil, false
}

// Build 构建指定脚本的动作模板
//
// callbacks 为 call 动作提供回调；脚本引用了未注册的回调时返回错误。
func (l *ActionLibrary) Build(name string, callbacks map[string]func()) (actions.Action, error) {
	script, ok := l.Script(name)
	if !ok {
		return nil, fmt.Errorf("script %q not found", name)
	}
	return BuildSpec(&script.Action, name, callbacks)
}

// BuildSpec 把 ActionSpec 树构建成动作模板，path 用于错误信息中定位节点
func BuildSpec(spec *ActionSpec, path string, callbacks map[string]func()) (actions.Action, error) {
	return buildSpec(spec, path, callbacks, true)
}

// ScriptError 构建失败的节点：Path 形如 bounce.children[1].child
type ScriptError struct {
	Path string
	Type string
	Err  error
}

func (e *ScriptError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Type, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// buildSpec strict 为 false 时 call 的回调缺失不报错（替换为空回调）
func buildSpec(spec *ActionSpec, path string, callbacks map[string]func(), strict bool) (actions.Action, error) {
	a, err := buildNode(spec, path, callbacks, strict)
	if err != nil {
		// 只在最深的出错节点上记录路径
		var se *ScriptError
		if errors.As(err, &se) {
			return nil, err
		}
		return nil, &ScriptError{Path: path, Type: spec.Type, Err: err}
	}
	return a, nil
}

func buildNode(spec *ActionSpec, path string, callbacks map[string]func(), strict bool) (actions.Action, error) {
	switch spec.Type {
	case "place":
		return actions.NewPlace(types.V(spec.X, spec.Y)), nil
	case "call":
		return buildCall(spec, callbacks, strict)
	case "hide":
		return actions.NewHide(), nil
	case "show":
		return actions.NewShow(), nil
	case "toggle_visibility":
		return actions.NewToggleVisibility(), nil

	case "move_by":
		return actions.NewMoveBy(types.V(spec.X, spec.Y), spec.Duration), nil
	case "move_to":
		return actions.NewMoveTo(types.V(spec.X, spec.Y), spec.Duration), nil
	case "rotate_by":
		return actions.NewRotateBy(spec.Angle, spec.Duration), nil
	case "rotate_to":
		return actions.NewRotateTo(spec.Angle, spec.Duration), nil
	case "scale_by":
		return actions.NewScaleBy(spec.scaleVec(), spec.Duration), nil
	case "scale_to":
		return actions.NewScaleTo(spec.scaleVec(), spec.Duration), nil
	case "fade_to":
		return actions.NewFadeTo(spec.Opacity, spec.Duration), nil
	case "fade_in":
		return actions.NewFadeIn(spec.Duration), nil
	case "fade_out":
		return actions.NewFadeOut(spec.Duration), nil
	case "blink":
		return actions.NewBlink(spec.Times, spec.Duration)
	case "delay":
		return actions.NewDelay(spec.Duration), nil
	case "random_delay":
		return actions.NewRandomDelay(spec.Min, spec.Max)

	case "speed", "accelerate", "accel_deccel", "ease":
		return buildRetime(spec, path, callbacks, strict)

	case "sequence", "spawn":
		children, err := buildChildren(spec, path, callbacks, strict)
		if err != nil {
			return nil, err
		}
		if spec.Type == "sequence" {
			return actions.NewSequence(children...)
		}
		return actions.NewSpawn(children...)

	case "repeat", "loop", "reverse":
		child, err := buildChild(spec, path, callbacks, strict)
		if err != nil {
			return nil, err
		}
		switch spec.Type {
		case "repeat":
			return actions.NewRepeat(child, spec.Times)
		case "loop":
			return actions.NewLoop(child)
		default:
			return child.Reverse()
		}

	case "":
		return nil, fmt.Errorf("missing type")
	default:
		return nil, fmt.Errorf("unknown type %q", spec.Type)
	}
}

// Callbacks 返回树中所有 call 动作引用的回调名（按出现顺序去重）
func (s *ActionSpec) Callbacks() []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(spec *ActionSpec)
	walk = func(spec *ActionSpec) {
		if spec.Type == "call" && spec.Callback != "" && !seen[spec.Callback] {
			seen[spec.Callback] = true
			names = append(names, spec.Callback)
		}
		if spec.Child != nil {
			walk(spec.Child)
		}
		for i := range spec.Children {
			walk(&spec.Children[i])
		}
	}
	walk(s)
	return names
}

// scaleVec factor 非零时为统一缩放，否则使用 x, y
func (s *ActionSpec) scaleVec() types.Vec2 {
	if s.Factor != 0 {
		return types.V(s.Factor, s.Factor)
	}
	return types.V(s.X, s.Y)
}

func buildCall(spec *ActionSpec, callbacks map[string]func(), strict bool) (actions.Action, error) {
	if spec.Callback == "" {
		return nil, fmt.Errorf("missing callback name")
	}
	fn, ok := callbacks[spec.Callback]
	if !ok && strict {
		return nil, fmt.Errorf("unknown callback %q", spec.Callback)
	}
	return actions.NewCallFunction(fn), nil
}

func buildRetime(spec *ActionSpec, path string, callbacks map[string]func(), strict bool) (actions.Action, error) {
	child, err := buildChild(spec, path, callbacks, strict)
	if err != nil {
		return nil, err
	}
	inner, ok := child.(actions.IntervalAction)
	if !ok {
		return nil, fmt.Errorf("child %s is not a timed action", spec.Child.Type)
	}

	switch spec.Type {
	case "speed":
		return actions.NewSpeed(inner, spec.Factor)
	case "accelerate":
		return actions.NewAccelerate(inner, spec.Rate)
	case "accel_deccel":
		rate := spec.Rate
		if rate == 0 {
			rate = 1
		}
		return actions.NewAccelDeccel(inner, rate)
	default:
		fn, ok := easeFuncs[spec.Ease]
		if !ok {
			return nil, fmt.Errorf("unknown ease %q", spec.Ease)
		}
		return actions.NewEase(inner, fn)
	}
}

func buildChild(spec *ActionSpec, path string, callbacks map[string]func(), strict bool) (actions.Action, error) {
	if spec.Child == nil {
		return nil, fmt.Errorf("missing child")
	}
	return buildSpec(spec.Child, path+".child", callbacks, strict)
}

func buildChildren(spec *ActionSpec, path string, callbacks map[string]func(), strict bool) ([]actions.Action, error) {
	if len(spec.Children) == 0 {
		return nil, fmt.Errorf("missing children")
	}
	children := make([]actions.Action, len(spec.Children))
	for i := range spec.Children {
		a, err := buildSpec(&spec.Children[i], fmt.Sprintf("%s.children[%d]", path, i), callbacks, strict)
		if err != nil {
			return nil, err
		}
		children[i] = a
	}
	return children, nil
}
