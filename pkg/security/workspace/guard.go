// Package workspace confines run outputs to a designated directory. It
// keeps configured output paths (the README, the screenshot directory)
// from escaping the run's workspace via traversal or symlinks.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Guard validates that output paths stay within the workspace root.
type Guard struct {
	root string
}

// NewGuard creates a guard rooted at the given directory. The root is
// resolved to an absolute, symlink-evaluated path.
func NewGuard(root string) (*Guard, error) {
	if root == "" {
		return nil, fmt.Errorf("workspace directory cannot be empty")
	}

	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace directory: %w", err)
	}

	evalPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate workspace directory: %w", err)
	}

	return &Guard{root: evalPath}, nil
}

// Root returns the resolved workspace root.
func (g *Guard) Root() string {
	return g.root
}

// ResolvePath turns a path into an absolute path inside the workspace
// context. Relative paths are joined to the root; "~" expands to the
// home directory. Symlinks are evaluated where the path (or its parent)
// already exists, so a link pointing outside the root cannot hide an
// escape.
func (g *Guard) ResolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	expanded := path
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand ~: %w", err)
		}
		expanded = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	abs := filepath.Clean(expanded)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(g.root, abs)
	}

	// Not-yet-created outputs are fine; evaluate the nearest existing
	// ancestor so symlinked parents still resolve.
	if eval, err := filepath.EvalSymlinks(abs); err == nil {
		return eval, nil
	}
	if evalParent, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(evalParent, filepath.Base(abs)), nil
	}
	return abs, nil
}

// ValidatePath resolves a path and checks it stays within the workspace.
// It returns the resolved path so callers can use it directly.
func (g *Guard) ValidatePath(path string) (string, error) {
	resolved, err := g.ResolvePath(path)
	if err != nil {
		return "", err
	}

	if !g.contains(resolved) {
		return "", fmt.Errorf("path %q is outside workspace %q", path, g.root)
	}
	return resolved, nil
}

func (g *Guard) contains(abs string) bool {
	if abs == g.root {
		return true
	}
	return strings.HasPrefix(abs, g.root+string(filepath.Separator))
}
