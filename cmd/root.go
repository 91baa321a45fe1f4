package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"twocheck/internal/assets"
	"twocheck/internal/config"
	"twocheck/internal/logging"
)

var cfgFile string
var verbose bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "twocheck",
	Short: "Batch-check two-word phrases for unique hits in a litt index",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/twocheck); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show executed commands and tool diagnostics")
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	var cfgDir string
	if cfgFile != "" {
		cfgDir = filepath.Dir(cfgFile)
	} else {
		dir, _ := os.UserConfigDir()
		cfgDir = filepath.Join(dir, "twocheck")
	}
	// Ensure config directory and default config.yaml exist
	_ = os.MkdirAll(cfgDir, 0o755)
	_ = assets.WriteDefaultConfigIfMissing(cfgDir)
	// Gather all YAML files and load
	entries, _ := os.ReadDir(cfgDir)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(cfgDir, e.Name()))
		}
	}
	if len(files) == 0 {
		logging.Error("no YAML config files found in " + cfgDir)
		os.Exit(1)
	}
	cfg, err := config.LoadFromFiles(files)
	if err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		logging.Error("schema error: " + err.Error())
		os.Exit(1)
	}
	logging.Init()
	logging.SetVerbose(verbose)
}
