package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/organisemyprojects/guilint/lint"
)

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".guilint.yaml")
	require.NoError(t, initConfigurationFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config lint.Config
	require.NoError(t, yaml.Unmarshal(data, &config))
	assert.Equal(t, "guilint", config.Name)
	assert.Empty(t, config.Rules)
}

func TestResolveConfigPath(t *testing.T) {
	t.Parallel()

	// an explicit path always wins
	assert.Equal(t, "custom.yaml", resolveConfigPath("custom.yaml"))

	// without an explicit path and no .guilint.yaml nearby, stay unconfigured
	assert.Equal(t, "", resolveConfigPath(""))
}
