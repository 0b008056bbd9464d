// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opuskit/opusbuild/pkg/core"
)

var (
	cfgFile    string
	outputRoot string
	target     string
	host       string
	linker     string
	debug      bool
	config     *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "opusbuild",
	Short: "libopus acquisition and binding pipeline",
	Long: `opusbuild - libopus acquisition and binding pipeline

Resolves the pinned libopus release for the target platform, building it
from source when neither the system registry nor a previous build can
supply it, then generates the filtered FFI binding surface.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/opusbuild/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputRoot, "out", "", "build output root directory")
	rootCmd.PersistentFlags().StringVar(&target, "target", "", "target triple")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "host triple (auto-detected)")
	rootCmd.PersistentFlags().StringVar(&linker, "linker", "", "cross linker path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if outputRoot != "" {
		config.OutputRoot = outputRoot
	}
	if target != "" {
		config.Target = target
	}
	if host != "" {
		config.Host = host
	}
	if linker != "" {
		config.Linker = linker
	}
	if debug {
		config.Debug = true
	}
}
