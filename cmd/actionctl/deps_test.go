package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/gonewx/actionkit"

// packageImports 返回目录下非测试源文件的 import 列表
func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read %s: %v", dir, err)
	}

	fset := token.NewFileSet()
	var imports []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("failed to parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			imports = append(imports, path)
		}
	}
	return imports
}

// TestActionctlDoesNotImportEbiten 命令行工具及其依赖的本模块包都不引入 ebiten（无需 cgo/X11 即可构建）
func TestActionctlDoesNotImportEbiten(t *testing.T) {
	root := filepath.Join("..", "..")
	visited := map[string]bool{}
	queue := []string{"cmd/actionctl"}

	for len(queue) > 0 {
		rel := queue[0]
		queue = queue[1:]
		if visited[rel] {
			continue
		}
		visited[rel] = true

		for _, imp := range packageImports(t, filepath.Join(root, filepath.FromSlash(rel))) {
			if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
				t.Errorf("%s imports %s", rel, imp)
			}
			if strings.HasPrefix(imp, modulePath+"/") {
				queue = append(queue, strings.TrimPrefix(imp, modulePath+"/"))
			}
		}
	}

	for _, pkg := range []string{"pkg/game", "pkg/systems", "pkg/components", "pkg/actions"} {
		if !visited[pkg] {
			t.Errorf("Expected %s in the dependency walk", pkg)
		}
	}
}
