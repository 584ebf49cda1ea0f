package providers

import (
	"hotprospects/internal/structures"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypeEnum(TypePost), GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Other(t *testing.T) {
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("DELETE"))
}

func TestTypeEnum_String(t *testing.T) {
	assert.Equal(t, "store", TypeStore.String())
	assert.Equal(t, "reminder", TypeReminder.String())
	assert.Equal(t, "app", TypeEnum(99).String())
}

func logConfig(dir, level string) *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: level,
			Mode:  0644,
			Dir:   dir,
		},
	}
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(logConfig(dir, "info"))
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeGet, "get message")
	logger.Warnf(TypeStore, "store %s", "warning")

	for _, name := range []string{"app", "store", "scan", "reminder", "get", "post"} {
		_, err := os.Stat(filepath.Join(dir, name+".log"))
		assert.NoError(t, err, name)
	}
}

func TestNewLogProvider_WritesByTypeAndLevel(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(logConfig(dir, "info"))
	require.NoError(t, err)
	logger.Warnf(TypeStore, "store %s", "warning")
	logger.Debugf(TypeStore, "hidden below level")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "store.log"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `"message":"store warning"`)
	assert.Contains(t, content, `"type":"store"`)
	assert.Contains(t, content, `"level":"warn"`)
	assert.False(t, strings.Contains(content, "hidden below level"))
}

func TestNewLogProvider_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger, err := NewLogProvider(logConfig(dir, "debug"))
	require.NoError(t, err)
	logger.Close()

	_, err = os.Stat(filepath.Join(dir, "app.log"))
	assert.NoError(t, err)
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := NewLogProvider(logConfig(filepath.Join(file, "logs"), "info"))
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	_, err := NewLogProvider(logConfig(t.TempDir(), "verbose"))
	assert.Error(t, err)
}
