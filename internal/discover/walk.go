package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// MarkdownSuffix is the file name suffix of documents that are scanned.
const MarkdownSuffix = ".md"

// ErrNotDirectory is returned when the scan root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// WalkOption configures Walk.
type WalkOption func(*walker)

type walker struct {
	ignore map[string]bool
}

// WithIgnoredFolders skips subdirectories whose base name is one of names.
// The root itself is never skipped.
func WithIgnoredFolders(names ...string) WalkOption {
	return func(w *walker) {
		for _, name := range names {
			w.ignore[name] = true
		}
	}
}

// Walk returns the absolute paths of all files beneath root, recursively,
// in lexical walk order. Directories are not reported. Symbolic links to
// directories beneath root are not followed; a root that is itself a
// symbolic link to a directory is walked, and paths are reported under
// root as given.
//
// Walk fails if root does not exist or is not a directory, and stops at
// the first error encountered while walking.
func Walk(root string, opts ...WalkOption) ([]string, error) {
	w := &walker{ignore: make(map[string]bool)}
	for _, opt := range opts {
		opt(w)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", absRoot, ErrNotDirectory)
	}

	// WalkDir does not descend into a symlinked root, so walk its target
	// and report paths under the root as given.
	walkRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", absRoot, err)
	}

	paths := make([]string, 0)
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if path != walkRoot && w.ignore[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			// Dangling links are still listed as files; reading them fails later.
			if err == nil && target.IsDir() {
				return nil
			}
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.Join(absRoot, rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// IsMarkdown reports whether the final component of path ends in ".md".
func IsMarkdown(path string) bool {
	return strings.HasSuffix(filepath.Base(path), MarkdownSuffix)
}

// FilterMarkdown returns the markdown paths of paths sorted in ascending
// lexicographic order. The input slice is not modified and duplicates are
// kept.
func FilterMarkdown(paths []string) []string {
	docs := make([]string, 0, len(paths))
	for _, path := range paths {
		if IsMarkdown(path) {
			docs = append(docs, path)
		}
	}
	slices.Sort(docs)
	return docs
}
