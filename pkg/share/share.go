package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrUnavailable is reported when no share target is configured on this
// deployment. Callers must surface it as an explicit failure, never as a
// silent no-op.
var ErrUnavailable = errors.New("share: no share target available")

// Sharer hands an exported file to whatever share mechanism the
// deployment provides and returns a reference the user can follow
// (a local path or a presigned URL).
type Sharer interface {
	Share(ctx context.Context, filePath, mimeType, dialogTitle string) (string, error)
}

// NewUnavailable returns a Sharer that always fails with ErrUnavailable.
// Used when the configured backend cannot be constructed.
func NewUnavailable() Sharer {
	return unavailableSharer{}
}

type unavailableSharer struct{}

func (unavailableSharer) Share(context.Context, string, string, string) (string, error) {
	return "", ErrUnavailable
}

type localSharer struct {
	dir string
}

// NewLocal returns a Sharer that publishes files into a shared directory
// and reports the absolute destination path.
func NewLocal(dir string) (Sharer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("share: create dir: %w", err)
	}
	return &localSharer{dir: dir}, nil
}

func (s *localSharer) Share(ctx context.Context, filePath, mimeType, dialogTitle string) (string, error) {
	dst := filepath.Join(s.dir, filepath.Base(filePath))
	if err := copyFile(filePath, dst); err != nil {
		return "", fmt.Errorf("share: publish %q: %w", filepath.Base(filePath), err)
	}
	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("share: resolve path: %w", err)
	}
	return abs, nil
}

func copyFile(src, dst string) error {
	if src == dst {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
