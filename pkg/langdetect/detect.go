// Package langdetect tags code blocks with a programming language.
// The fence info string wins when present; otherwise the fence body is
// classified with go-enry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback tag when nothing more specific can be determined.
const langText = "text"

// infoAliases maps common fence info strings to canonical tags.
var infoAliases = map[string]string{
	"golang": "go",
	"py":     "python",
	"sh":     "bash",
	"shell":  "bash",
	"zsh":    "bash",
	"js":     "javascript",
	"ts":     "typescript",
	"yml":    "yaml",
}

// FromInfoString normalizes a fence info string ("Go", "py", "bash -x") to a
// canonical language tag. Returns "" when the info string is empty.
func FromInfoString(info string) string {
	// Info strings may carry trailing attributes; the language is the first word.
	lang, _, _ := strings.Cut(strings.TrimSpace(info), " ")
	lang = strings.ToLower(lang)
	if alias, ok := infoAliases[lang]; ok {
		return alias
	}
	return lang
}

// Detect returns the detected language tag for code content.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// A handful of unambiguous structural patterns beat the classifier.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Classifier over the languages that actually show up in fences.
	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Rust", "Java", "C", "SQL", "JSON", "YAML", "HTML", "Dockerfile",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPattern checks for highly indicative language markers.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)

	if bytes.HasPrefix(trimmed, []byte("package ")) ||
		bytes.Contains(trimmed, []byte("func main()")) {
		return "go"
	}

	if bytes.Contains(trimmed, []byte("def ")) && bytes.Contains(trimmed, []byte("):")) {
		return "python"
	}

	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return "json"
	}

	upper := strings.ToUpper(string(trimmed))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "CREATE TABLE "} {
		if strings.HasPrefix(upper, kw) {
			return "sql"
		}
	}

	if bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(trimmed, []byte("RUN ")) {
		return "dockerfile"
	}

	return ""
}

// normalize converts go-enry language names to fence-style tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
