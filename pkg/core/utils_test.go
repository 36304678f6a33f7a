package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv/app", "logs"), TargetDir("/srv/app"))
}

func TestClassifyEntry(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.log")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(sub, link))
	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), dangling))

	tests := []struct {
		path string
		want entryKind
	}{
		{file, kindFile},
		{sub, kindDir},
		{link, kindSymlink},
		{dangling, kindSymlink},
	}
	for _, tt := range tests {
		got, err := classifyEntry(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := classifyEntry(filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestIsProtected(t *testing.T) {
	tests := []struct {
		path  string
		extra []string
		want  bool
	}{
		{"/proc/logs", nil, true},
		{"/sys/kernel/logs", nil, true},
		{"/dev/shm/logs", nil, true},
		{"/usr/local/app/logs", nil, false},
		{"/usr/src/app/logs", nil, false},
		{"/etc/app/logs", nil, false},
		{"/home/app/logs", nil, false},
		{"/srv/data/logs", []string{"/srv/*"}, true},
		{"/srv/data/logs", []string{"/opt/*"}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isProtected(tt.path, tt.extra), tt.path)
	}
}
