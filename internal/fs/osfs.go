package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
)

type OSFS struct{}

// the concrete implementation of FS backed by the local OS filesystem.

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) List(ctx context.Context, dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("backup directory: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("backup directory %s: %w", dir, ErrNotDir)
	}

	var entries []os.DirEntry
	err = retry(ctx, "list", func() error {
		var rerr error
		entries, rerr = os.ReadDir(dir)
		return rerr
	})
	if err != nil {
		return nil, fmt.Errorf("reading folder: %w", err)
	}

	names := []string{}
	for _, ent := range entries {
		name := ent.Name()
		if ok, _ := filepath.Match(pattern, name); !ok {
			continue
		}
		if isDir(dir, ent) {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

// isDir follows symlinks so a link to a directory is not treated as a file.
func isDir(dir string, ent os.DirEntry) bool {
	if ent.IsDir() {
		return true
	}
	if ent.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	st, err := os.Stat(filepath.Join(dir, ent.Name()))
	return err == nil && st.IsDir()
}

func (o *OSFS) Remove(ctx context.Context, path string) (bool, error) {
	removed := true
	err := retry(ctx, "remove", func() error {
		err := os.Remove(path)
		if errors.Is(err, iofs.ErrNotExist) {
			removed = false
			return nil
		}
		return err
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
