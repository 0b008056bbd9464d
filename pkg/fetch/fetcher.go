// pkg/fetch/fetcher.go
package fetch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/layout"
	"github.com/opuskit/opusbuild/pkg/platform"
)

// Fetcher ensures the pinned-version source tree exists at the resolved
// source directory. Fetching is idempotent: once the source tree contains
// the build-configuration marker file it is never fetched again.
type Fetcher struct {
	layout   layout.Layout
	url      string
	targetOS string
	logger   *logrus.Logger

	clone func(ctx context.Context, dir string, opts *git.CloneOptions) error
}

// New creates a fetcher for the pinned version. An empty url falls back to
// the canonical upstream location.
func New(l layout.Layout, p *platform.Platform, url string, logger *logrus.Logger) *Fetcher {
	if url == "" {
		url = core.DefaultGitURL
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Fetcher{
		layout:   l,
		url:      url,
		targetOS: p.TargetOS(),
		logger:   logger,
		clone:    gitClone,
	}
}

// MarkerPath returns the file whose presence marks a complete source tree:
// the autotools bootstrap script on unix targets, the cmake manifest on
// Windows targets.
func (f *Fetcher) MarkerPath() string {
	marker := "autogen.sh"
	if f.targetOS == "windows" {
		marker = "CMakeLists.txt"
	}
	return filepath.Join(f.layout.SourceDir(), marker)
}

// Ensure makes the pinned source tree available. If the marker file already
// exists it returns immediately without touching the network.
func (f *Fetcher) Ensure(ctx context.Context) error {
	if _, err := os.Stat(f.MarkerPath()); err == nil {
		f.logger.Debugf("fetch: %s already present, skipping", f.layout.SourceDir())
		return nil
	}

	if isArchiveURL(f.url) {
		f.logger.Debugf("fetch: extracting release archive %s", f.url)
		return f.fetchArchive(ctx)
	}

	f.logger.Debugf("fetch: cloning %s tag %s", f.url, layout.FetchTag())
	opts := &git.CloneOptions{
		URL:           f.url,
		ReferenceName: plumbing.NewTagReferenceName(layout.FetchTag()),
		SingleBranch:  true,
		Depth:         1,
	}
	if err := f.clone(ctx, f.layout.SourceDir(), opts); err != nil {
		return &core.Error{Op: "fetch", Tool: "git", Output: err.Error(), Err: core.ErrFetchFailed}
	}
	return nil
}

func gitClone(ctx context.Context, dir string, opts *git.CloneOptions) error {
	_, err := git.PlainCloneContext(ctx, dir, false, opts)
	return err
}
