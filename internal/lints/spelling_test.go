package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

func TestDetectMisspelledICloud(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name:     "correct spelling",
			src:      "label = \"iCloud Drive\"\n",
			expected: 0,
		},
		{
			name:     "all lowercase",
			src:      "label = \"sync to icloud\"\n",
			expected: 1,
		},
		{
			name:     "leading capital",
			src:      "label = \"Icloud folder\"\n",
			expected: 1,
		},
		{
			name:     "both capitals",
			src:      "label = \"ICloud status\"\n",
			expected: 1,
		},
		{
			name:     "two misspellings in one string",
			src:      "label = \"icloud and Icloud\"\n",
			expected: 2,
		},
		{
			name:     "word boundary protects longer identifiers",
			src:      "label = \"icloudish\"\n",
			expected: 0,
		},
		{
			name:     "comments are not strings",
			src:      "# talks about icloud\nlabel = \"ok\"\n",
			expected: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := parseTestFile(t, tc.src)
			issues, err := DetectMisspelledICloud(file, tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)

			for _, issue := range issues {
				assert.Equal(t, "spelling-icloud", issue.Rule)
			}
		})
	}
}
