// internal/cli/fetch.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opuskit/opusbuild"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the pinned source tree",
	Long: `Ensure the pinned library source exists in the output directory.
A source tree that already carries its build-configuration marker is left
untouched.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pipe, err := opusbuild.NewPipeline(config)
	if err != nil {
		return err
	}

	if err := pipe.Fetch(ctx); err != nil {
		return err
	}

	fmt.Printf("✓ Source available at %s\n", pipe.Layout().SourceDir())
	return nil
}
