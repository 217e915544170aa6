package langdetect_test

import (
	"testing"

	"github.com/yaklabco/md2docx/pkg/langdetect"
)

func TestFromInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		info     string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "go", "go"},
		{"uppercase", "Go", "go"},
		{"alias golang", "golang", "go"},
		{"alias py", "py", "python"},
		{"alias sh", "sh", "bash"},
		{"alias yml", "yml", "yaml"},
		{"attributes stripped", "bash -x", "bash"},
		{"unknown passes through", "brainfuck", "brainfuck"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.FromInfoString(testCase.info); got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"empty is text", "", "text"},
		{"whitespace is text", "   \n  ", "text"},
		{"go package clause", "package main\n\nimport \"fmt\"\n", "go"},
		{"go main func", "func main() {\n\tprintln(1)\n}\n", "go"},
		{"python def", "def handler(event):\n    return event\n", "python"},
		{"json object", `{"name": "value", "count": 3}`, "json"},
		{"sql select", "SELECT id FROM users WHERE active = 1", "sql"},
		{"dockerfile", "FROM alpine:3.20\nRUN apk add curl\n", "dockerfile"},
		{"shebang bash", "#!/bin/bash\necho hi\n", "bash"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.Detect([]byte(testCase.content)); got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}
