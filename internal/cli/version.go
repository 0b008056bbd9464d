// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opuskit/opusbuild/pkg/layout"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("opusbuild version 0.1.0")
		fmt.Printf("pinned libopus %s\n", layout.Version)
		fmt.Println("https://github.com/opuskit/opusbuild")
	},
}
