package nolint

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organisemyprojects/guilint/internal/lints"
)

func parseTestFile(t *testing.T, src string) *lints.File {
	t.Helper()
	file, err := lints.ParseSource("test.py", []byte(src))
	require.NoError(t, err)
	t.Cleanup(file.Close)
	return file
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        string
		line       int
		rule       string
		suppressed bool
	}{
		{
			name:       "inline nolint suppresses its own line",
			src:        "x = 1  # nolint\n",
			line:       1,
			rule:       "constant-naming",
			suppressed: true,
		},
		{
			name:       "inline nolint does not reach the next line",
			src:        "x = 1  # nolint\ny = 2\n",
			line:       2,
			rule:       "constant-naming",
			suppressed: false,
		},
		{
			name:       "standalone nolint covers the following line",
			src:        "# nolint\nx = 1\n",
			line:       2,
			rule:       "constant-naming",
			suppressed: true,
		},
		{
			name:       "rule scoped nolint matches its rule",
			src:        "x = 1  # nolint:constant-naming\n",
			line:       1,
			rule:       "constant-naming",
			suppressed: true,
		},
		{
			name:       "rule scoped nolint ignores other rules",
			src:        "x = 1  # nolint:widget-naming\n",
			line:       1,
			rule:       "constant-naming",
			suppressed: false,
		},
		{
			name:       "multiple rules in one comment",
			src:        "x = 1  # nolint:widget-naming,constant-naming\n",
			line:       1,
			rule:       "constant-naming",
			suppressed: true,
		},
		{
			name:       "unrelated comment with the prefix text",
			src:        "x = 1  # nolinting is not a word\n",
			line:       1,
			rule:       "constant-naming",
			suppressed: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := parseTestFile(t, tc.src)
			mgr := ParseComments(file)

			pos := token.Position{Filename: "test.py", Line: tc.line, Column: 1}
			assert.Equal(t, tc.suppressed, mgr.IsNolint(pos, tc.rule))
		})
	}
}

func TestIsNolintEmptyManager(t *testing.T) {
	t.Parallel()

	file := parseTestFile(t, "x = 1\n")
	mgr := ParseComments(file)

	pos := token.Position{Filename: "test.py", Line: 1, Column: 1}
	assert.False(t, mgr.IsNolint(pos, "constant-naming"))
}
