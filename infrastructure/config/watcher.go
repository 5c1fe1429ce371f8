package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"socialgraph-backend/domain/core/aggregates"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DynamicConfig represents runtime-changeable configuration. Today
// that is only the graph growth ceilings, the one practical guard
// against pathological input size.
type DynamicConfig struct {
	Limits LimitsConfig `json:"limits"`
}

// LimitsConfig holds the graph ceilings
type LimitsConfig struct {
	MaxUsers       int `json:"maxUsers"`
	MaxFriendships int `json:"maxFriendships"`
}

// DefaultDynamicConfig returns the built-in dynamic configuration
func DefaultDynamicConfig() *DynamicConfig {
	defaults := aggregates.DefaultLimits()
	return &DynamicConfig{
		Limits: LimitsConfig{
			MaxUsers:       defaults.MaxUsers,
			MaxFriendships: defaults.MaxFriendships,
		},
	}
}

// ConfigChangeCallback is called when the dynamic configuration changes
type ConfigChangeCallback func(oldConfig, newConfig *DynamicConfig)

// ConfigWatcher watches a JSON configuration file for changes and
// hot-reloads the graph limits. When no path is configured it simply
// serves the defaults.
type ConfigWatcher struct {
	path        string
	watcher     *fsnotify.Watcher
	current     *DynamicConfig
	mu          sync.RWMutex
	onChange    []ConfigChangeCallback
	logger      *zap.Logger
	stopCh      chan struct{}
	lastModTime time.Time
}

// NewConfigWatcher creates a watcher for the given config file. An
// empty path disables watching; the watcher then answers with default
// limits forever.
func NewConfigWatcher(configPath string, logger *zap.Logger) (*ConfigWatcher, error) {
	cw := &ConfigWatcher{
		path:    configPath,
		current: DefaultDynamicConfig(),
		logger:  logger,
		stopCh:  make(chan struct{}),
	}

	if configPath == "" {
		return cw, nil
	}

	config, err := loadConfigFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}
	cw.current = config

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(configPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config file: %w", err)
	}

	// Also watch the directory for atomic saves (rename operations).
	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		logger.Warn("Failed to watch config directory", zap.Error(err))
	}

	cw.watcher = watcher
	go cw.watchLoop()

	return cw, nil
}

// CurrentLimits returns the active graph ceilings. Implements the
// application's LimitsProvider port.
func (cw *ConfigWatcher) CurrentLimits() aggregates.Limits {
	cw.mu.RLock()
	defer cw.mu.RUnlock()
	return aggregates.Limits{
		MaxUsers:       cw.current.Limits.MaxUsers,
		MaxFriendships: cw.current.Limits.MaxFriendships,
	}
}

// Current returns the full dynamic configuration
func (cw *ConfigWatcher) Current() *DynamicConfig {
	cw.mu.RLock()
	defer cw.mu.RUnlock()
	snapshot := *cw.current
	return &snapshot
}

// OnChange registers a callback invoked after each successful reload
func (cw *ConfigWatcher) OnChange(cb ConfigChangeCallback) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.onChange = append(cw.onChange, cb)
}

// Stop shuts down the watcher
func (cw *ConfigWatcher) Stop() {
	close(cw.stopCh)
	if cw.watcher != nil {
		cw.watcher.Close()
	}
}

func (cw *ConfigWatcher) watchLoop() {
	// Editors and atomic writers fire several events per save; a short
	// debounce collapses them into one reload.
	var reloadTimer *time.Timer
	defer func() {
		if reloadTimer != nil {
			reloadTimer.Stop()
		}
	}()

	for {
		select {
		case <-cw.stopCh:
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(cw.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			reloadTimer = time.AfterFunc(100*time.Millisecond, cw.reload)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Error("config watcher error", zap.Error(err))
		}
	}
}

func (cw *ConfigWatcher) reload() {
	info, err := os.Stat(cw.path)
	if err != nil {
		cw.logger.Warn("config file unavailable, keeping previous config",
			zap.String("path", cw.path),
			zap.Error(err),
		)
		return
	}

	cw.mu.Lock()
	if !info.ModTime().After(cw.lastModTime) {
		cw.mu.Unlock()
		return
	}
	cw.lastModTime = info.ModTime()
	cw.mu.Unlock()

	config, err := loadConfigFromFile(cw.path)
	if err != nil {
		cw.logger.Error("failed to reload config, keeping previous config",
			zap.String("path", cw.path),
			zap.Error(err),
		)
		return
	}

	cw.mu.Lock()
	old := cw.current
	cw.current = config
	callbacks := make([]ConfigChangeCallback, len(cw.onChange))
	copy(callbacks, cw.onChange)
	cw.mu.Unlock()

	cw.logger.Info("dynamic config reloaded",
		zap.Int("maxUsers", config.Limits.MaxUsers),
		zap.Int("maxFriendships", config.Limits.MaxFriendships),
	)

	for _, cb := range callbacks {
		cb(old, config)
	}
}

func loadConfigFromFile(path string) (*DynamicConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultDynamicConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	if config.Limits.MaxUsers <= 0 || config.Limits.MaxFriendships <= 0 {
		return nil, fmt.Errorf("limits must be positive")
	}

	return config, nil
}
