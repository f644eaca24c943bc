// Package store persists commands as one file per entry under a single
// root directory. The relative path of a file is the entry's identifier,
// so the filesystem hierarchy is the command hierarchy.
package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
)

// lockFile lives inside the store root and is excluded from listings.
const lockFile = ".lock"

// Store is a file-backed command store rooted at a single directory.
type Store struct {
	root string
}

// New returns a Store rooted at dir. The directory is not created; call
// Init for that.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Exists reports whether the store root directory exists.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.root)
	return err == nil && info.IsDir()
}

// Init creates the store root directory.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("cannot create store %s: %w", s.root, err)
	}
	return nil
}

// FilePath returns the absolute file path backing a command path.
func (s *Store) FilePath(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

// Get loads the entry at an exact path.
func (s *Store) Get(path string) (Command, error) {
	file := s.FilePath(path)
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return Command{}, &NotFoundError{Path: path}
		}
		return Command{}, fmt.Errorf("cannot read %s: %w", file, err)
	}
	return parseCommand(path, string(data))
}

// Add writes a new entry. Unless overwrite is set, adding over an
// existing entry fails with ExistsError.
func (s *Store) Add(cmd Command, overwrite bool) error {
	if err := ValidatePath(cmd.Path); err != nil {
		return err
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	file := s.FilePath(cmd.Path)
	if _, err := os.Stat(file); err == nil && !overwrite {
		return &ExistsError{Path: cmd.Path}
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", cmd.Path, err)
	}
	if err := os.WriteFile(file, []byte(cmd.fileContent()), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", file, err)
	}
	return nil
}

// Remove deletes the entry at path and prunes any directories left empty.
func (s *Store) Remove(path string) error {
	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	file := s.FilePath(path)
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &NotFoundError{Path: path}
	}
	if err := os.Remove(file); err != nil {
		return fmt.Errorf("cannot remove %s: %w", file, err)
	}
	return s.pruneEmptyDirs(file)
}

// Rename moves an entry from src to dst. The destination must not exist.
func (s *Store) Rename(src, dst string) error {
	if err := ValidatePath(dst); err != nil {
		return err
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	srcFile := s.FilePath(src)
	dstFile := s.FilePath(dst)

	if _, err := os.Stat(srcFile); os.IsNotExist(err) {
		return &NotFoundError{Path: src}
	}
	if _, err := os.Stat(dstFile); err == nil {
		return &ExistsError{Path: dst}
	}
	if err := os.MkdirAll(filepath.Dir(dstFile), 0o755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", dst, err)
	}
	if err := os.Rename(srcFile, dstFile); err != nil {
		return fmt.Errorf("cannot move %s to %s: %w", src, dst, err)
	}
	return s.pruneEmptyDirs(srcFile)
}

// List returns all entries under prefix (the whole store when prefix is
// empty), sorted by path. This is the corpus loader: the matcher operates
// on the snapshot returned here.
func (s *Store) List(prefix string) ([]Command, error) {
	if !s.Exists() {
		return nil, ErrNotInitialized
	}

	root := s.root
	if prefix != "" {
		root = s.FilePath(prefix)
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return []Command{}, nil
		}
		return nil, fmt.Errorf("cannot stat %s: %w", root, err)
	}

	// Prefix may name a single entry rather than a category.
	if !info.IsDir() {
		cmd, err := s.Get(prefix)
		if err != nil {
			return nil, err
		}
		return []Command{cmd}, nil
	}

	var out []Command
	walkFn := func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == lockFile {
			return nil
		}
		rel, err := filepath.Rel(s.root, file)
		if err != nil {
			return err
		}
		path := filepath.ToSlash(rel)
		cmd, err := s.Get(path)
		if err != nil {
			// Malformed files are skipped, not fatal: one broken entry
			// must not take down every listing and search.
			log.Debug("skipping malformed entry", "path", path, "err", err)
			return nil
		}
		out = append(out, cmd)
		return nil
	}
	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, fmt.Errorf("cannot scan store: %w", err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out, nil
}

// lock takes an exclusive advisory lock on the store so mutations from
// concurrent invocations do not interleave.
func (s *Store) lock() (func(), error) {
	if !s.Exists() {
		return nil, ErrNotInitialized
	}
	fl := flock.New(filepath.Join(s.root, lockFile))
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("cannot lock store: %w", err)
	}
	return func() { _ = fl.Unlock() }, nil
}

// pruneEmptyDirs removes now-empty parent directories of file, walking up
// until the store root or a non-empty directory.
func (s *Store) pruneEmptyDirs(file string) error {
	dir := filepath.Dir(file)
	for {
		if dir == s.root || !strings.HasPrefix(dir, s.root) {
			return nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if len(entries) > 0 {
			return nil
		}
		if err := os.Remove(dir); err != nil {
			return err
		}
		dir = filepath.Dir(dir)
	}
}
