// Package unpack extracts downloaded boilerplate archives and moves the
// extracted tree into place.
package unpack

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/arcframework/arc/internal/debug"
)

// Extract extracts every entry of the zip archive into destDir.
// Entries already written are left in place when a later entry fails.
func Extract(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return newExtractError("failed to open zip archive", archivePath, err)
	}
	defer r.Close()

	root, err := filepath.Abs(destDir)
	if err != nil {
		return newExtractError("failed to resolve destination", destDir, err)
	}

	debug.DebugFields("[unpack] extracting", zap.String("archive", archivePath), zap.Int("entries", len(r.File)))

	for _, f := range r.File {
		target, err := entryPath(root, f.Name)
		if err != nil {
			return err
		}
		if err := checkNoSymlinks(root, target, f.Name); err != nil {
			return err
		}
		if err := extractEntry(root, f, target); err != nil {
			return err
		}
	}

	return nil
}

// entryPath resolves an archive entry name inside root, rejecting names that
// escape it.
func entryPath(root, name string) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(name))
	if !within(root, target) {
		return "", newUnsafePathError(name)
	}
	return target, nil
}

func within(root, path string) bool {
	return path == root || strings.HasPrefix(path, root+string(os.PathSeparator))
}

// checkNoSymlinks rejects an entry when any existing component of its path
// below root, itself included, is a symlink.
func checkNoSymlinks(root, target, name string) error {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return newUnsafePathError(name)
	}
	if rel == "." {
		return nil
	}

	cur := root
	for _, part := range strings.Split(rel, string(os.PathSeparator)) {
		cur = filepath.Join(cur, part)
		info, err := os.Lstat(cur)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return newExtractError("failed to inspect path", cur, err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return newUnsafePathError(name)
		}
	}
	return nil
}

// linkInside reports whether a symlink at target pointing to link stays in root.
func linkInside(root, target, link string) bool {
	if link == "" || filepath.IsAbs(link) || filepath.VolumeName(link) != "" {
		return false
	}
	return within(root, filepath.Join(filepath.Dir(target), filepath.FromSlash(link)))
}

func extractEntry(root string, f *zip.File, target string) error {
	mode := f.Mode()

	switch {
	case f.FileInfo().IsDir():
		if err := os.MkdirAll(target, dirPerm(mode)); err != nil {
			return newExtractError("failed to create directory", target, err)
		}
		return nil

	case mode&os.ModeSymlink != 0:
		linkTarget, err := readEntry(f)
		if err != nil {
			return newExtractError("failed to read symlink entry", f.Name, err)
		}
		if !linkInside(root, target, string(linkTarget)) {
			return newUnsafePathError(f.Name)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return newExtractError("failed to create parent directory", target, err)
		}
		if err := os.Symlink(string(linkTarget), target); err != nil {
			return newExtractError("failed to create symlink", target, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return newExtractError("failed to create parent directory", target, err)
	}

	rc, err := f.Open()
	if err != nil {
		return newExtractError("failed to open zip entry", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm(mode))
	if err != nil {
		return newExtractError("failed to create file", target, err)
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return newExtractError("failed to write file", target, err)
	}
	if err := out.Close(); err != nil {
		return newExtractError("failed to write file", target, err)
	}

	return nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func filePerm(mode os.FileMode) os.FileMode {
	if perm := mode.Perm(); perm != 0 {
		return perm | 0600
	}
	return 0644
}

func dirPerm(mode os.FileMode) os.FileMode {
	if perm := mode.Perm(); perm != 0 {
		return perm | 0700
	}
	return 0755
}

// Rename moves an extracted path to its final name.
func Rename(from, to string) error {
	debug.DebugFields("[unpack] renaming", zap.String("from", from), zap.String("to", to))
	if err := os.Rename(from, to); err != nil {
		return newRenameError(from, to, err)
	}
	return nil
}

// CleanUp removes the temporary archive. Failures, including the file being
// already gone, are ignored.
func CleanUp(archivePath string) {
	_ = os.Chmod(archivePath, 0777)
	if err := os.Remove(archivePath); err != nil {
		debug.DebugFields("[unpack] archive cleanup skipped", zap.String("path", archivePath), zap.Error(err))
	}
}
