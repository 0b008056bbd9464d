// internal/cli/probe.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opuskit/opusbuild"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report which acquisition strategy would satisfy the build",
	Long: `Run the zero-cost probes without any side effects and report
whether the system registry or a previous build already satisfies the
pinned library.`,
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pipe, err := opusbuild.NewPipeline(config)
	if err != nil {
		return err
	}

	fmt.Printf("Platform: %s\n", pipe.Platform())

	if paths, err := pipe.ProbeSystem(ctx); err == nil {
		fmt.Printf("System library found, include paths: %v\n", paths.IncludePaths)
		return nil
	}
	fmt.Println("System library: not found")

	if paths, err := pipe.ProbePrebuilt(); err == nil {
		fmt.Printf("Prebuilt artifact found, link paths: %v\n", paths.LinkPaths)
		return nil
	}
	fmt.Println("Prebuilt artifact: not found")

	fmt.Println("A from-source build would be required")
	return nil
}
