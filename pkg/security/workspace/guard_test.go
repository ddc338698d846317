package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) (*Guard, string) {
	t.Helper()
	root := t.TempDir()
	guard, err := NewGuard(root)
	require.NoError(t, err)
	return guard, guard.Root()
}

func TestNewGuard(t *testing.T) {
	guard, root := newTestGuard(t)
	assert.Equal(t, root, guard.Root())

	_, err := NewGuard("")
	assert.Error(t, err)

	_, err = NewGuard(filepath.Join(root, "does-not-exist"))
	assert.Error(t, err)
}

func TestValidatePath(t *testing.T) {
	guard, root := newTestGuard(t)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "relative path inside", path: "README.md"},
		{name: "nested relative path", path: "out/screenshots/card.png"},
		{name: "workspace root itself", path: "."},
		{name: "absolute path inside", path: filepath.Join(root, "README.md")},
		{name: "traversal escape", path: "../outside.md", wantErr: true},
		{name: "nested traversal escape", path: "out/../../outside.md", wantErr: true},
		{name: "absolute path outside", path: "/tmp/outside.md", wantErr: true},
		{name: "empty path", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := guard.ValidatePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(resolved))
		})
	}
}

func TestValidatePath_TraversalThatStaysInside(t *testing.T) {
	guard, _ := newTestGuard(t)

	// ".." segments that still land inside the root are fine.
	resolved, err := guard.ValidatePath("out/../README.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(guard.Root(), "README.md"), resolved)
}

func TestValidatePath_SymlinkEscape(t *testing.T) {
	guard, root := newTestGuard(t)

	outside := t.TempDir()
	link := filepath.Join(root, "sneaky")
	require.NoError(t, os.Symlink(outside, link))

	_, err := guard.ValidatePath("sneaky/README.md")
	assert.Error(t, err, "symlink pointing outside the workspace should be rejected")
}

func TestValidatePath_NotYetCreatedFile(t *testing.T) {
	guard, root := newTestGuard(t)

	resolved, err := guard.ValidatePath("new-dir/README.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "new-dir", "README.md"), resolved)
}
