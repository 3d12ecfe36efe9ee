// Package config loads application configuration from flags, environment
// variables and HCL files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

// Config holds the application configuration. Flags override environment
// variables, which override config files.
type Config struct {
	FeedURL   string `flag:"url" hcl:"feed_url" env:"FEED_URL" default:"https://iuedelweiss.tistory.com" usage:"blog or RSS feed URL"`
	Filter    string `flag:"filter" hcl:"filter" env:"FILTER" usage:"only download posts published after this date (YYYY/MM/DD)"`
	OutputDir string `flag:"output" hcl:"output_dir" env:"OUTPUT_DIR" default:"images" usage:"folder to save images into"`
	LogLevel  string `flag:"log-level" hcl:"log_level" env:"LOG_LEVEL" default:"info" usage:"log level (debug, info, warn, error)"`
}

// Load reads configuration, parsing flags from args.
func Load(args []string) (*Config, error) {
	files := []string{"./config.hcl"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".config", "rssimages", "config.hcl"))
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "RSSIMG",
		Args:      args,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
