package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

func TestDetectLayoutConflict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected int
		line     int
	}{
		{
			name: "status and progress share a cell",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.lblStatus = tk.Label(self)
        self.progressBar = tk.Frame(self)
        self.lblStatus.grid(row=0, column=1, sticky="ew")
        self.progressBar.grid(row=0, column=1, sticky="ew")
`,
			expected: 1,
			line:     8,
		},
		{
			name: "different stickiness is not a conflict",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.lblStatus = tk.Label(self)
        self.progressBar = tk.Frame(self)
        self.lblStatus.grid(row=0, column=1, sticky="ew")
        self.progressBar.grid(row=0, column=1, sticky="ns")
`,
			expected: 0,
		},
		{
			name: "different cells are not a conflict",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.lblStatus = tk.Label(self)
        self.progressBar = tk.Frame(self)
        self.lblStatus.grid(row=0, column=0, sticky="ew")
        self.progressBar.grid(row=0, column=1, sticky="ew")
`,
			expected: 0,
		},
		{
			name: "fill keyword matches sticky",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.statusFrame = tk.Frame(self)
        self.barFrame = tk.Frame(self)
        self.statusFrame.grid(row=2, column=0, fill="x")
        self.barFrame.grid(row=2, column=0, fill="x")
`,
			expected: 1,
			line:     8,
		},
		{
			name: "two status widgets do not conflict with each other",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.lblStatus = tk.Label(self)
        self.lblOther = tk.Label(self)
        self.lblStatus.grid(row=0, column=0, sticky="ew")
        self.lblOther.grid(row=0, column=0, sticky="ew")
`,
			expected: 0,
		},
		{
			name: "placement without stretch keyword is ignored",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.lblStatus = tk.Label(self)
        self.progressBar = tk.Frame(self)
        self.lblStatus.grid(row=0, column=1)
        self.progressBar.grid(row=0, column=1, sticky="ew")
`,
			expected: 0,
		},
		{
			name: "conflict inside a nested class is reported once",
			src: `import tkinter as tk

class Outer:
    class Inner:
        def __init__(self):
            self.lblStatus = tk.Label(self)
            self.progressBar = tk.Frame(self)
            self.lblStatus.grid(row=0, column=0, sticky="ew")
            self.progressBar.grid(row=0, column=0, sticky="ew")
`,
			expected: 1,
			line:     9,
		},
		{
			name: "names matching both heuristics report the pair once",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.progressLabel = tk.Label(self)
        self.labelBar = tk.Frame(self)
        self.progressLabel.grid(row=0, column=0, sticky="ew")
        self.labelBar.grid(row=0, column=0, sticky="ew")
`,
			expected: 1,
			line:     8,
		},
		{
			name: "placements in different classes are independent",
			src: `import tkinter as tk

class Header:
    def __init__(self):
        self.lblStatus = tk.Label(self)
        self.lblStatus.grid(row=0, column=0, sticky="ew")

class Footer:
    def __init__(self):
        self.progressBar = tk.Frame(self)
        self.progressBar.grid(row=0, column=0, sticky="ew")
`,
			expected: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := parseTestFile(t, tc.src)
			issues, err := DetectLayoutConflict(file, tt.SeverityError)
			require.NoError(t, err)
			require.Len(t, issues, tc.expected)

			if tc.expected == 1 {
				issue := issues[0]
				assert.Equal(t, "layout-conflict", issue.Rule)
				assert.Equal(t, tt.CategoryLayoutConflict, issue.Category)
				assert.Equal(t, tc.line, issue.Start.Line)
			}
		})
	}
}

func TestDetectGeometryPreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name: "grid only file gets one advisory",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.frmMain = tk.Frame(self)
        self.frmSide = tk.Frame(self)
        self.frmMain.grid(row=0, column=0)
        self.frmSide.grid(row=0, column=1)
`,
			expected: 1,
		},
		{
			name: "pack anywhere silences the advisory",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.frmMain = tk.Frame(self)
        self.frmSide = tk.Frame(self)
        self.frmMain.grid(row=0, column=0)
        self.frmSide.pack()
`,
			expected: 0,
		},
		{
			name: "pack only file is fine",
			src: `import tkinter as tk

class App:
    def __init__(self):
        self.frmMain = tk.Frame(self)
        self.frmMain.pack(fill="both")
`,
			expected: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := parseTestFile(t, tc.src)
			issues, err := DetectGeometryPreference(file, tt.SeverityInfo)
			require.NoError(t, err)
			require.Len(t, issues, tc.expected)

			if tc.expected == 1 {
				assert.Equal(t, "geometry-preference", issues[0].Rule)
			}
		})
	}
}
