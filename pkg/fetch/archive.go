// pkg/fetch/archive.go
package fetch

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/opuskit/opusbuild/pkg/core"
)

// isArchiveURL reports whether the source location points at a release
// tarball instead of a git repository.
func isArchiveURL(url string) bool {
	return strings.HasSuffix(url, ".tar.gz") ||
		strings.HasSuffix(url, ".tgz") ||
		strings.HasSuffix(url, ".tar.xz")
}

// fetchArchive downloads the release tarball and extracts it into the
// pinned source directory.
func (f *Fetcher) fetchArchive(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return &core.Error{Op: "fetch", Output: err.Error(), Err: core.ErrFetchFailed}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &core.Error{Op: "fetch", Output: err.Error(), Err: core.ErrFetchFailed}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &core.Error{Op: "fetch", Output: resp.Status, Err: core.ErrFetchFailed}
	}

	if err := extractTar(resp.Body, f.url, f.layout.SourceDir()); err != nil {
		return &core.Error{Op: "fetch", Output: err.Error(), Err: core.ErrFetchFailed}
	}
	return nil
}

// extractTar unpacks a gzip or xz compressed tar stream into dest, stripping
// the archive's single top-level directory.
func extractTar(r io.Reader, name, dest string) error {
	var err error
	if strings.HasSuffix(name, ".tar.xz") {
		r, err = xz.NewReader(r)
	} else {
		r, err = gzip.NewReader(r)
	}
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}

	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading archive: %w", err)
		}

		rel := stripComponent(hdr.Name)
		if rel == "" {
			continue
		}
		if strings.Contains(rel, "..") {
			return fmt.Errorf("unsafe archive path: %s", hdr.Name)
		}
		path := filepath.Join(dest, filepath.FromSlash(rel))

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(path, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := writeFile(path, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		default:
			// symlinks and special entries are irrelevant to the build
		}
	}
}

// stripComponent drops the leading path component of a tar entry name
func stripComponent(name string) string {
	name = strings.TrimPrefix(name, "./")
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return ""
}

func writeFile(path string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
