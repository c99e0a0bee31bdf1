package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

func TestDetectWidgetNamingTkinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name: "well named widgets",
			src: `import tkinter as tk

class MainWindow:
    def __init__(self):
        self.btnSave = tk.Button(self)
        self.entryName = tk.Entry(self)
        self.lblStatus = tk.Label(self)
        self.frmHeader = tk.Frame(self)
`,
			expected: 0,
		},
		{
			name: "wrong prefix",
			src: `import tkinter as tk

class MainWindow:
    def __init__(self):
        self.saveButton = tk.Button(self)
`,
			expected: 1,
		},
		{
			name: "snake case under tkinter",
			src: `import tkinter as tk

class MainWindow:
    def __init__(self):
        self.save_button = tk.Button(self)
        self.name_entry = tk.Entry(self)
`,
			expected: 2,
		},
		{
			name: "prefix without camel case tail",
			src: `import tkinter as tk

class MainWindow:
    def __init__(self):
        self.btnsave = tk.Button(self)
`,
			expected: 1,
		},
		{
			name: "leading underscore is ignored for matching",
			src: `import tkinter as tk

class MainWindow:
    def __init__(self):
        self._btnSave = tk.Button(self)
`,
			expected: 0,
		},
		{
			name: "alias resolved constructor",
			src: `from tkinter import Button as Btn

class MainWindow:
    def __init__(self):
        self.saveButton = Btn(self)
`,
			expected: 1,
		},
		{
			name: "unknown widget type is skipped",
			src: `import tkinter as tk

class MainWindow:
    def __init__(self):
        self.whatever = CustomWidget(self)
        self.thing = tk.Canvas(self)
`,
			expected: 0,
		},
		{
			name: "module level assignment is skipped",
			src: `import tkinter as tk

root = tk.Button(None)
`,
			expected: 0,
		},
		{
			name: "plain local variable inside method is skipped",
			src: `import tkinter as tk

class MainWindow:
    def __init__(self):
        helper = tk.Button(self)
`,
			expected: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := parseTestFile(t, tc.src)
			issues, err := DetectWidgetNaming(file, tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)

			for _, issue := range issues {
				assert.Equal(t, "widget-naming", issue.Rule)
				assert.Equal(t, tt.CategoryNaming, issue.Category)
			}
		})
	}
}

func TestDetectWidgetNamingQt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name: "snake case is the qt convention",
			src: `from PyQt5.QtWidgets import QPushButton, QLabel

class MainWindow:
    def __init__(self):
        self.save_button = QPushButton("Save")
        self.status_label = QLabel("")
`,
			expected: 0,
		},
		{
			name: "camel case under qt",
			src: `from PyQt5.QtWidgets import QPushButton

class MainWindow:
    def __init__(self):
        self.saveButton = QPushButton("Save")
`,
			expected: 1,
		},
		{
			name: "dotted constructor resolves to leaf",
			src: `from PySide6 import QtWidgets

class MainWindow:
    def __init__(self):
        self.SaveButton = QtWidgets.QPushButton("Save")
`,
			expected: 1,
		},
		{
			name: "single word snake name",
			src: `from PyQt6.QtWidgets import QLineEdit

class MainWindow:
    def __init__(self):
        self.search = QLineEdit()
`,
			expected: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := parseTestFile(t, tc.src)
			issues, err := DetectWidgetNaming(file, tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)
		})
	}
}

func TestDetectWidgetNamingNoFramework(t *testing.T) {
	t.Parallel()

	src := `class Plain:
    def __init__(self):
        self.saveButton = Button(self)
`
	file := parseTestFile(t, src)
	issues, err := DetectWidgetNaming(file, tt.SeverityError)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
