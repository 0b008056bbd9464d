// internal/cli/generate.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opuskit/opusbuild"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Acquire the library and generate bindings",
	Long: `Run the full pipeline: resolve the library through the acquisition
strategy chain, then invoke the binding generator against the resolved
include paths.

Link directives for the invoking build system are printed on stdout;
everything else goes to stderr.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pipe, err := opusbuild.NewPipeline(config)
	if err != nil {
		return err
	}

	directives, err := pipe.Generate(ctx)
	if err != nil {
		return err
	}

	// Single emission point for the build-system declarations
	for _, d := range directives {
		fmt.Println(d)
	}

	fmt.Fprintf(os.Stderr, "✓ Bindings written to %s\n", pipe.Layout().BindingsPath())
	return nil
}
