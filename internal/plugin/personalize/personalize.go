// Package personalize rewrites boilerplate placeholders in a new plugin.
package personalize

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/arcframework/arc/internal/debug"
	"github.com/arcframework/arc/internal/plugin/model"
)

// Reporter is told about each substitution before it is performed.
type Reporter func(Substitution)

// RenameEntry renames the boilerplate entry file inside pluginDir to the
// request's entry file name and returns the new path.
func RenameEntry(pluginDir string, req model.Request) (string, error) {
	from := filepath.Join(pluginDir, model.BoilerplateFilename)
	to := filepath.Join(pluginDir, req.EntryFilename())
	if from == to {
		return to, nil
	}

	debug.DebugFields("[personalize] renaming entry file", zap.String("from", from), zap.String("to", to))
	if err := os.Rename(from, to); err != nil {
		return "", newRenameError(from, err)
	}
	return to, nil
}

// Apply performs subs in order, resolving relative paths against workDir.
// It stops at the first failure; earlier substitutions stay applied.
func Apply(workDir string, subs []Substitution, report Reporter) error {
	for _, s := range subs {
		if report != nil {
			report(s)
		}

		path := s.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		if err := ReplaceInFile(path, s.Placeholder, s.Replacement); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceInFile replaces every occurrence of old with replacement in the file
// at path. Matching is exact and not word aware.
func ReplaceInFile(path, old, replacement string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newTargetMissingError(path, err)
		}
		return newIOError("failed to stat file", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return newIOError("failed to read file", path, err)
	}

	updated := strings.ReplaceAll(string(data), old, replacement)
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return newIOError("failed to write file", path, err)
	}
	return nil
}
