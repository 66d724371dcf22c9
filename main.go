// 动作展示程序
//
// 用法：
//
//	go run . [--config=path/to/showcase.yaml] [--verbose]
//
// 不指定 --config 时使用内置的 data/actions/showcase.yaml。
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/actionkit/pkg/app"
	"github.com/gonewx/actionkit/pkg/embedded"
)

var (
	configPath = flag.String("config", "", "展示配置文件路径（默认使用内置配置）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ShowcasePath: *configPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	window := gameApp.Window()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(gameApp.TPS())

	log.Printf("✓ 窗口配置: %dx%d @ %d TPS", window.Width, window.Height, gameApp.TPS())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
