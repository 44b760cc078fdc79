// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// WalkFunc receives a directory path relative to the walk root ("" for the
// root itself) and the regular files it contains, sorted by name.
// Returning an error stops the walk.
type WalkFunc func(dir string, files []os.FileInfo) error

// Walk traverses root top-down. Child directories are pruned with
// Config.SkipDir before descent and symbolic links are never followed.
// A root that is missing or not a directory yields a *NotFoundError.
func Walk(fsys billy.Filesystem, root string, cfg Config, logger *zap.Logger, fn WalkFunc) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return &NotFoundError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return &NotFoundError{Path: root}
	}
	logger.Debug("Starting traversal", zap.String("root", root))
	return walkDir(fsys, root, "", cfg, logger, fn)
}

func walkDir(fsys billy.Filesystem, root, rel string, cfg Config, logger *zap.Logger, fn WalkFunc) error {
	dirPath := root
	if rel != "" {
		dirPath = fsys.Join(root, rel)
	}

	entries, err := fsys.ReadDir(dirPath)
	if err != nil {
		if rel == "" {
			return fmt.Errorf("failed to read directory %s: %w", root, err)
		}
		logger.Warn("Skipping unreadable directory", zap.String("directory", dirPath), zap.Error(err))
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	logger.Debug("Processing directory", zap.String("directory", displayDir(rel)))

	var files []os.FileInfo
	var subdirs []string
	for _, entry := range entries {
		mode := entry.Mode()
		switch {
		case mode&os.ModeSymlink != 0:
			if isDirLink(fsys, fsys.Join(dirPath, entry.Name())) {
				logger.Debug("Not following directory symlink", zap.String("path", filepath.Join(rel, entry.Name())))
			} else {
				logger.Warn("Skipping symlink", zap.String("path", filepath.Join(rel, entry.Name())))
			}
		case entry.IsDir():
			subdirs = append(subdirs, entry.Name())
		case mode.IsRegular():
			files = append(files, entry)
		default:
			logger.Debug("Skipping non-regular file", zap.String("path", filepath.Join(rel, entry.Name())), zap.Stringer("mode", mode))
		}
	}

	if err := fn(rel, files); err != nil {
		return err
	}

	for _, name := range pruneDirs(subdirs, cfg, rel, logger) {
		if err := walkDir(fsys, root, filepath.Join(rel, name), cfg, logger, fn); err != nil {
			return err
		}
	}
	return nil
}

// pruneDirs returns the subset of names that traversal descends into.
func pruneDirs(names []string, cfg Config, rel string, logger *zap.Logger) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if cfg.SkipDir(name) {
			logger.Debug("Skipping excluded directory", zap.String("directory", filepath.Join(rel, name)))
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func isDirLink(fsys billy.Filesystem, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

func displayDir(rel string) string {
	if rel == "" {
		return "."
	}
	return filepath.ToSlash(rel)
}
