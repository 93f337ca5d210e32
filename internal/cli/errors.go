package cli

import (
	"errors"
	"strings"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

// userMessage renders err as one line for the terminal.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.HasPrefix(oe.Op, "workspacefinder"):
				return "workspace not found (run `hope init`)"
			case strings.HasPrefix(oe.Op, "historystore"):
				return "history record not found"
			case strings.HasPrefix(oe.Op, "yamlreminders"):
				return "reminder calendar not found"
			case strings.HasPrefix(oe.Op, "yamlvitals"):
				return "vitals file not found (run `hope init` to create one)"
			}
			return "not found"
		case domain.KindInvalidConfig:
			if oe.Path != "" {
				return "invalid configuration in " + oe.Path
			}
			return "invalid configuration"
		}
	}

	var ie *domain.InvalidInputError
	if errors.As(err, &ie) {
		return ie.Error()
	}

	return err.Error()
}
