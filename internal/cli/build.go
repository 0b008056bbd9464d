// internal/cli/build.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opuskit/opusbuild"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Acquire the library without generating bindings",
	Long: `Resolve the library through the acquisition strategy chain only:
system registry first, then a previously built artifact, then a full
from-source build into the install prefix.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pipe, err := opusbuild.NewPipeline(config)
	if err != nil {
		return err
	}

	paths, directives, err := pipe.Acquire(ctx)
	if err != nil {
		return err
	}

	for _, d := range directives {
		fmt.Println(d)
	}

	fmt.Fprintf(os.Stderr, "Include paths: %v\n", paths.IncludePaths)
	fmt.Fprintf(os.Stderr, "Link paths: %v\n", paths.LinkPaths)
	return nil
}
