package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mchmarny/qfair/pkg/fairness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	dir := t.TempDir()

	c1, err := ReadOrCreate(dir)
	require.NoError(t, err)
	require.NotNil(t, c1)
	assert.Equal(t, fairness.DefaultUpperLimit, c1.UpperLimit)
	assert.Equal(t, FormatJSON, c1.Format)

	c1.UpperLimit = 255
	c1.Format = FormatYAML
	c1.LogLevel = "debug"

	err = Save(dir, c1)
	assert.NoError(t, err)

	c2, err := ReadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, c1.UpperLimit, c2.UpperLimit)
	assert.Equal(t, c1.Format, c2.Format)
	assert.Equal(t, c1.LogLevel, c2.LogLevel)
	assert.Equal(t, 256, c2.Scale().Bins())
}

func TestReadOrCreate_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "app")

	c, err := ReadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.FileExists(t, filepath.Join(dir, configFileName))
}

func TestReadOrCreate_Invalid(t *testing.T) {
	_, err := ReadOrCreate("")
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("upper_limit: 0\n"), fileMode))
	_, err = ReadOrCreate(dir)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("upper_limit: [\n"), fileMode))
	_, err = ReadOrCreate(dir)
	assert.Error(t, err)
}

func TestReadOrCreate_FormatAlias(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("format: yml\n"), fileMode))

	c, err := ReadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, c.Format)
	assert.Equal(t, fairness.DefaultUpperLimit, c.UpperLimit)
}

func TestValidate(t *testing.T) {
	var c *Config
	assert.Error(t, c.Validate())

	c = Default()
	assert.NoError(t, c.Validate())

	c.Format = "xml"
	assert.Error(t, c.Validate())

	assert.Error(t, Save(t.TempDir(), c))
	assert.Error(t, Save("", Default()))
}

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, NormalizeFormat("YML"))
	assert.Equal(t, FormatYAML, NormalizeFormat(" yaml "))
	assert.Equal(t, FormatJSON, NormalizeFormat(""))
	assert.Equal(t, "xml", NormalizeFormat("xml"))
}

func TestGetOrCreateHomeDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, created, err := GetOrCreateHomeDir("qfair-test")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, ".qfair-test", filepath.Base(dir))

	_, created, err = GetOrCreateHomeDir(".qfair-test")
	require.NoError(t, err)
	assert.False(t, created)

	_, _, err = GetOrCreateHomeDir("")
	assert.Error(t, err)
}
