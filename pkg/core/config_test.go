package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logs-clean/pkg/constants"
)

func TestParseConfigMissingFile(t *testing.T) {
	config, err := ParseConfig(filepath.Join(t.TempDir(), "none.conf"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, constants.LogFileName, filepath.Base(config.LogFile))
}

func TestParseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs-clean.conf")
	content := `# logs-clean
log_level = 2
log_file = /var/tmp/logs-clean/clean.log
log_max_size = 5
log_max_age = 3
log_max_backups = 1
log_compress = false
protected_paths = /srv/*, /data/* ,
unknown_key = ignored
not a pair
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:       2,
		LogFile:        "/var/tmp/logs-clean/clean.log",
		LogMaxSize:     5,
		LogMaxAge:      3,
		LogMaxBackups:  1,
		LogCompress:    false,
		ProtectedPaths: []string{"/srv/*", "/data/*"},
	}, config)
}

func TestParseConfigNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs-clean.conf")
	require.NoError(t, os.WriteFile(path, []byte("log_level = 9\nlog_max_size = 0\nlog_file =\n"), 0644))

	config, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultLogLevel, config.LogLevel)
	assert.Equal(t, constants.DefaultLogMaxSize, config.LogMaxSize)
	assert.Equal(t, DefaultLogFile(), config.LogFile)
}

func TestParseConfigInvalidNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs-clean.conf")
	require.NoError(t, os.WriteFile(path, []byte("log_level = 1\nlog_max_age = week\n"), 0644))

	_, err := ParseConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "第2行 log_max_age")
}
