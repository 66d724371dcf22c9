package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/actionkit/pkg/embedded"
)

func initEmbedded(t *testing.T) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", DefaultShowcase))
	if err != nil {
		t.Fatalf("failed to read showcase: %v", err)
	}
	embedded.Init(fstest.MapFS{
		DefaultShowcase: {Data: data},
	})
}

func TestLoadShowcaseEmbedded(t *testing.T) {
	initEmbedded(t)

	cfg, err := LoadShowcase("")
	if err != nil {
		t.Fatalf("LoadShowcase failed: %v", err)
	}
	if len(cfg.Nodes) == 0 {
		t.Fatal("Expected nodes in built-in showcase")
	}
	for _, node := range cfg.Nodes {
		if _, ok := cfg.Script(node.Script); !ok {
			t.Errorf("node %s references missing script %q", node.ID, node.Script)
		}
	}
}

func TestLoadShowcaseFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	content := `
window:
  width: 320
  height: 240
nodes:
  - id: a
    script: fade
scripts:
  - name: fade
    action: {type: fade_out, duration: 1}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShowcase(path)
	if err != nil {
		t.Fatalf("LoadShowcase failed: %v", err)
	}
	if cfg.Window.Width != 320 || cfg.Window.Height != 240 {
		t.Errorf("Expected 320x240, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	// 未指定的字段使用默认值
	if cfg.Playback.TPS != 60 {
		t.Errorf("Expected default TPS 60, got %d", cfg.Playback.TPS)
	}
}

func TestNewAppMissingConfig(t *testing.T) {
	_, err := NewApp(Config{Verbose: true, ShowcasePath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("Expected error for missing config")
	}
}
