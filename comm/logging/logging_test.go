package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestConfigure_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "godis.log")
	log := GetDefaultLogger()
	defer Configure(Config{Level: "info"})

	Configure(Config{Level: "warn", File: file, MaxSizeMB: 1})
	assert.False(t, log.Enabled(InfoLevel))
	assert.True(t, log.Enabled(ErrorLevel))

	log.Infof("dropped %d", 1)
	log.Warnf("kept %d", 2)
	_ = log.Sync()

	bts, err := os.ReadFile(file)
	require.NoError(t, err)
	t.Logf("%s", bts)
	assert.Contains(t, string(bts), "kept 2")
	assert.NotContains(t, string(bts), "dropped")
}
