package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

func TestDetectLogMessageFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name:     "lowercase info message",
			src:      "logger.info(\"starting sync\")\n",
			expected: 0,
		},
		{
			name:     "capitalized info message",
			src:      "logger.info(\"Starting sync\")\n",
			expected: 1,
		},
		{
			name:     "progress message with ellipsis is exempt",
			src:      "logger.info(\"Syncing files...\")\n",
			expected: 0,
		},
		{
			name:     "capitalized warning message",
			src:      "logger.warning(\"Disk almost full\")\n",
			expected: 1,
		},
		{
			name:     "capitalized error message",
			src:      "logger.error(\"Failed to sync\")\n",
			expected: 0,
		},
		{
			name:     "lowercase error message",
			src:      "logger.error(\"failed to sync\")\n",
			expected: 1,
		},
		{
			name:     "error message with interior capitals",
			src:      "logger.error(\"Sync Failed\")\n",
			expected: 1,
		},
		{
			name:     "dynamic message is skipped",
			src:      "logger.info(f\"Synced {count} files\")\n",
			expected: 0,
		},
		{
			name:     "info call on any receiver is checked",
			src:      "status.info(\"About\")\n",
			expected: 1,
		},
		{
			name:     "call without arguments",
			src:      "logger.info()\n",
			expected: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := parseTestFile(t, tc.src)
			issues, err := DetectLogMessageFormat(file, tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)

			for _, issue := range issues {
				assert.Equal(t, "log-message", issue.Rule)
				assert.Equal(t, tt.CategoryFormatting, issue.Category)
			}
		})
	}
}

func TestPythonStringHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, pythonIsLower("starting sync"))
	assert.True(t, pythonIsLower("retry #2"))
	assert.False(t, pythonIsLower("Starting sync"))
	assert.False(t, pythonIsLower("1234"))
	assert.False(t, pythonIsLower(""))

	assert.Equal(t, "Failed to sync", pythonCapitalize("failed to sync"))
	assert.Equal(t, "Sync failed", pythonCapitalize("sync FAILED"))
	assert.Equal(t, "", pythonCapitalize(""))
}
