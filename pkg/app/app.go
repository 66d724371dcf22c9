// Package app 提供动作展示程序的 ebiten.Game 包装器
//
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/actionkit/pkg/config"
	"github.com/gonewx/actionkit/pkg/embedded"
)

// DefaultShowcase 内置展示配置
const DefaultShowcase = embedded.ActionsDir + "/showcase.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ShowcasePath 展示配置文件路径，为空则使用内置配置
	ShowcasePath string
}

// App 实现 ebiten.Game 接口
type App struct {
	config   *config.ShowcaseConfig
	showcase *Showcase
	verbose  bool
	showHelp bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 加载展示配置并创建场景
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	showcaseConfig, err := LoadShowcase(cfg.ShowcasePath)
	if err != nil {
		return nil, fmt.Errorf("加载展示配置失败: %w", err)
	}
	if cfg.Verbose {
		showcaseConfig.Playback.Verbose = true
	}

	showcase, err := NewShowcase(showcaseConfig, SolidImage)
	if err != nil {
		return nil, fmt.Errorf("创建展示场景失败: %w", err)
	}
	log.Printf("[App] 展示场景就绪: %d 个节点", len(showcaseConfig.Nodes))

	return &App{
		config:   showcaseConfig,
		showcase: showcase,
		verbose:  cfg.Verbose,
		showHelp: true,
	}, nil
}

// LoadShowcase 从文件或内置资源加载展示配置
func LoadShowcase(path string) (*config.ShowcaseConfig, error) {
	if path != "" {
		return config.LoadShowcaseConfig(path)
	}
	data, err := embedded.ReadFile(DefaultShowcase)
	if err != nil {
		return nil, err
	}
	return config.ParseShowcaseConfig(data)
}

// Update 处理输入并推进一帧
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.config.Window.Width, a.config.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.showcase.Restart(); err != nil {
			return err
		}
		log.Println("[App] 重新开始")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.showcase.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.showHelp = !a.showHelp
	}

	a.showcase.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制节点和信息栏
func (a *App) Draw(screen *ebiten.Image) {
	a.showcase.Draw(screen)

	info := fmt.Sprintf("TPS: %.1f | t=%.2fs | 运行中: %d", ebiten.ActualTPS(), a.showcase.Clock(), a.showcase.RunningCount())
	if a.showcase.Paused() {
		info += " | 已暂停"
	}
	ebitenutil.DebugPrintAt(screen, info, 10, 10)

	if a.showHelp {
		ebitenutil.DebugPrintAt(screen, "R - restart  Space - pause  H - help  F11 - fullscreen  Esc - quit", 10, a.config.Window.Height-24)
	}
}

// DrawFinalScreen 全屏时用黑边填充并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Window.Width, a.config.Window.Height
}

// Window 窗口配置
func (a *App) Window() config.WindowConfig {
	return a.config.Window
}

// TPS 目标帧率
func (a *App) TPS() int {
	return a.config.Playback.TPS
}

// Showcase 返回展示场景
func (a *App) Showcase() *Showcase {
	return a.showcase
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
