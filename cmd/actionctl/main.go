// actionctl 动作脚本命令行工具
//
// 用法：
//
//	actionctl validate data/actions/library.yaml
//	actionctl simulate data/actions/library.yaml --script pop --dt 0.05
//	actionctl reverse data/actions/library.yaml --script slide_in
//	actionctl preset save data/actions/library.yaml --script shake
package main

import (
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
