package files

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Local stores uploads under a directory on disk.
type Local struct {
	baseDir string
}

func NewLocal(baseDir string) *Local {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &Local{baseDir: baseDir}
}

func (l *Local) Save(_ context.Context, name, _ string, data []byte) (string, error) {
	// rooting the name keeps it inside baseDir
	clean := strings.TrimPrefix(filepath.Clean("/"+filepath.FromSlash(name)), string(filepath.Separator))
	dst := filepath.Join(l.baseDir, clean)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("prepare upload dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return dst, nil
}

func (l *Local) Sweep(ctx context.Context, olderThan time.Time) (int, error) {
	removed := 0
	err := filepath.WalkDir(l.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().Before(olderThan) {
			if err := os.Remove(path); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return removed, err
	}
	return removed, l.pruneEmptyDirs()
}

// pruneEmptyDirs removes date directories left without files.
func (l *Local) pruneEmptyDirs() error {
	entries, err := os.ReadDir(l.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(l.baseDir, e.Name())
		children, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		if len(children) == 0 {
			if err := os.Remove(dir); err != nil {
				return fmt.Errorf("remove empty dir %s: %w", dir, err)
			}
		}
	}
	return nil
}
