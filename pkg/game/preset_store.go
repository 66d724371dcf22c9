package game

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/actionkit/pkg/config"
)

// 存储路径常量
const (
	presetsObject   = "presets"
	presetsProperty = "catalog"
)

// PresetStore 具名动作脚本的持久化存储
//
// 所有预设保存在同一个 gdata 属性中（YAML 映射：名称 -> 脚本），
// 每次 Save / Delete 都会整体写回。
type PresetStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
	presets      map[string]config.ActionSpec
}

// NewPresetStore 创建预设存储并加载已保存的预设
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *PresetStore: 预设存储实例
//   - error: 已保存的数据无法读取或解析
func NewPresetStore(gdataManager *gdata.Manager) (*PresetStore, error) {
	ps := &PresetStore{
		gdataManager: gdataManager,
		presets:      make(map[string]config.ActionSpec),
	}
	if gdataManager == nil {
		log.Printf("[PresetStore] gdata unavailable, presets are kept in memory only")
		return ps, nil
	}
	if err := ps.load(); err != nil {
		return nil, err
	}
	return ps, nil
}

// OpenPresetStore 打开应用 appName 的 gdata 存储
//
// gdata 打开失败时退回降级模式并记录警告。
func OpenPresetStore(appName string) (*PresetStore, error) {
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[PresetStore] Warning: failed to open gdata storage: %v (falling back to memory)", err)
		return NewPresetStore(nil)
	}
	return NewPresetStore(gdataManager)
}

func (ps *PresetStore) load() error {
	if !ps.gdataManager.ObjectPropExists(presetsObject, presetsProperty) {
		return nil
	}

	data, err := ps.gdataManager.LoadObjectProp(presetsObject, presetsProperty)
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	var presets map[string]config.ActionSpec
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return fmt.Errorf("failed to unmarshal presets: %w", err)
	}
	if presets != nil {
		ps.presets = presets
	}

	log.Printf("[PresetStore] Loaded %d presets", len(ps.presets))
	return nil
}

func (ps *PresetStore) flush() error {
	// 降级模式：无法持久化，但不报错
	if ps.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(ps.presets)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}
	if err := ps.gdataManager.SaveObjectProp(presetsObject, presetsProperty, data); err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}
	return nil
}

func validPresetName(name string) error {
	if name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	if strings.ContainsAny(name, " \t\r\n/") {
		return fmt.Errorf("invalid preset name %q", name)
	}
	return nil
}

// Save 保存（或覆盖）预设
//
// 保存前会试构建脚本，无法构建的脚本不会写入。
func (ps *PresetStore) Save(name string, spec config.ActionSpec) error {
	if err := validPresetName(name); err != nil {
		return err
	}
	lib := config.ActionLibrary{Scripts: []config.ScriptConfig{{Name: name, Action: spec}}}
	if err := lib.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}

	prev, existed := ps.presets[name]
	ps.presets[name] = spec
	if err := ps.flush(); err != nil {
		// 写入失败时恢复内存状态
		if existed {
			ps.presets[name] = prev
		} else {
			delete(ps.presets, name)
		}
		return err
	}

	log.Printf("[PresetStore] Saved preset %q", name)
	return nil
}

// Load 读取预设
func (ps *PresetStore) Load(name string) (config.ActionSpec, error) {
	spec, ok := ps.presets[name]
	if !ok {
		return config.ActionSpec{}, fmt.Errorf("preset %q not found", name)
	}
	return spec, nil
}

// List 返回所有预设名（已排序）
func (ps *PresetStore) List() []string {
	names := make([]string, 0, len(ps.presets))
	for name := range ps.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Delete 删除预设，预设不存在时返回错误
func (ps *PresetStore) Delete(name string) error {
	spec, ok := ps.presets[name]
	if !ok {
		return fmt.Errorf("preset %q not found", name)
	}

	delete(ps.presets, name)
	if err := ps.flush(); err != nil {
		ps.presets[name] = spec
		return err
	}

	log.Printf("[PresetStore] Deleted preset %q", name)
	return nil
}

// Library 把所有预设组装成脚本库（按名称排序）
func (ps *PresetStore) Library() *config.ActionLibrary {
	lib := &config.ActionLibrary{}
	for _, name := range ps.List() {
		lib.Scripts = append(lib.Scripts, config.ScriptConfig{Name: name, Action: ps.presets[name]})
	}
	return lib
}

// IsPersistent 是否连接了 gdata 存储
func (ps *PresetStore) IsPersistent() bool {
	return ps.gdataManager != nil
}
