package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, domain.ErrExecution) {
		return "Could not access workspace files (see logs)"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlreminders") {
				return "Reminder calendar not found"
			}
			if strings.Contains(oe.Op, "historystore") {
				return "History record not found"
			}
			if strings.Contains(oe.Op, "yamlvitals") {
				return "Vitals file not found"
			}
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config in " + base

		default:
			return "Unexpected error (see logs)"
		}
	}

	var ie *domain.InvalidInputError
	if errors.As(err, &ie) {
		msg := ie.Error()
		return strings.ToUpper(msg[:1]) + msg[1:]
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

// errorText is userMessage plus, in debug mode, the raw error chain.
func (m model) errorText(err error) string {
	msg := userMessage(err)
	if m.deps.Debug && err != nil && msg != err.Error() {
		msg += " [" + err.Error() + "]"
	}
	return msg
}
