package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// configEnvVar 指定配置文件路径的环境变量，--config 未给出时读取。
const configEnvVar = "EUICTL_CONFIG"

// ctlConfig 是 euictl 的文件配置，为命令行 flag 提供默认值。
// flag 显式指定时优先于配置文件。
type ctlConfig struct {
	// Kind 默认种类名称，空值表示按宽度推断。
	Kind string `koanf:"kind"`
	// Format 默认输出格式 (colon/dash/dot/bare)。
	Format string `koanf:"format"`
	// Lower 默认是否小写输出。
	Lower bool `koanf:"lower"`
}

// defaultConfig 返回内置默认配置。
func defaultConfig() *ctlConfig {
	return &ctlConfig{Format: "colon"}
}

// loadConfig 加载配置文件。
// path 为空时回退到 EUICTL_CONFIG 环境变量，两者皆空时返回内置默认值。
// 根据文件扩展名选择解析器（.yaml/.yml 或 .json）。
func loadConfig(path string) (*ctlConfig, error) {
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path == "" {
		return defaultConfig(), nil
	}

	parser, err := parserForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return cfg, nil
}

// parserForPath 根据文件扩展名选择配置解析器。
func parserForPath(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, &usageError{msg: fmt.Sprintf("不支持的配置文件格式: %s（仅支持 .yaml/.yml/.json）", path)}
	}
}
