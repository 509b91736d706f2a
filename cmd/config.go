package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dzjyyds666/dcf/pkg"
	"github.com/spf13/cobra"
)

const defaultConfigFile = ".dcf.toml"

type GlobalParams struct {
	ConfigPath string // 配置文件路径
	Verbose    bool   // 输出调试日志
	Format     string // 输出格式
}

var globals = &GlobalParams{}

// Config is the optional TOML configuration. Flags win over the file.
type Config struct {
	Format   string   `toml:"format"`
	Record   string   `toml:"record"`
	Columns  []string `toml:"columns"`
	LogLevel string   `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{Format: formatJSON, LogLevel: "info"}
}

// settings is the effective configuration of the running command.
var settings = DefaultConfig()

var logger *slog.Logger

// LoadConfig reads a TOML file over the defaults. Unknown keys are an error
// so that typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func loadSettings(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	path := globals.ConfigPath
	if path == "" {
		exist, err := pkg.CheckFileExist(defaultConfigFile)
		if err != nil {
			return fmt.Errorf("check file exist error: %w", err)
		}
		if exist {
			path = defaultConfigFile
		}
	}
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return err
		}
	}

	if globals.Format != "" {
		cfg.Format = globals.Format
	}
	if globals.Verbose {
		cfg.LogLevel = "debug"
	}
	if cfg.Format != formatJSON && cfg.Format != formatYAML {
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	settings = cfg
	return nil
}
