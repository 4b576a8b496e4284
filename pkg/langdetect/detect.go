// Package langdetect provides best-effort language detection for fenced
// code blocks whose info string is empty. It uses go-enry's shebang and
// classifier detection with a few fast-path pattern checks for languages
// that dominate note-taking documents.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const (
	langGo     = "go"
	langPython = "python"
	langJSON   = "json"
	langHTML   = "html"
	langShell  = "bash"
	langText   = "text"
)

// candidates narrows the classifier to languages a fence body plausibly is;
// unconstrained classification over hundreds of languages is both slower
// and noisier on short snippets.
//
//nolint:gochecknoglobals // Static candidate list
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the detected language for a fence body, or "text" when
// detection fails or confidence is low. It never returns an error: an
// undetectable body is plain text, not a problem.
func Detect(body string) string {
	if strings.TrimSpace(body) == "" {
		return langText
	}
	content := []byte(body)

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(body); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPattern checks a few highly indicative patterns before paying for
// the classifier.
func detectByPattern(body string) string {
	trimmed := strings.TrimSpace(body)

	if strings.HasPrefix(trimmed, "package ") || strings.Contains(body, "func ") && strings.Contains(body, ":=") {
		return langGo
	}
	if strings.Contains(body, "def ") && strings.Contains(body, "):") {
		return langPython
	}
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "<!doctype html") || strings.Contains(lower, "<html") {
		return langHTML
	}
	if (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
		strings.Contains(trimmed, `"`) && strings.Contains(trimmed, ":") {
		return langJSON
	}
	if strings.HasPrefix(trimmed, "$ ") || strings.HasPrefix(trimmed, "#!/bin/") {
		return langShell
	}
	return ""
}

// normalize maps enry's display names to lowercase fence identifiers.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return langShell
	case "":
		return langText
	default:
		return strings.ToLower(lang)
	}
}
