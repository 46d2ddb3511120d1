package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/topicmap/internal/assets"
)

// detectDataDir looks for a directory holding the topics asset.
func detectDataDir() string {
	for _, dir := range []string{"data", "assets", "."} {
		if _, err := os.Stat(filepath.Join(dir, assets.TopicsFile)); err == nil {
			return dir
		}
	}
	return "data"
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to topicmap! Let's configure the explorer.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Directory holding topics.json and the element lists",
		Default: detectDataDir(),
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = dataDir

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to serve the explorer on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{string(LogFormatConsole), string(LogFormatJSON)},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.LogFormat = LogFormat(format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, p := range []string{cfg.AssetPaths().Topics, cfg.AssetPaths().Palette} {
		if _, err := os.Stat(p); err != nil {
			fmt.Printf("\nNote: %s not found yet; `topicmap check` will verify the assets.\n", p)
			break
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
