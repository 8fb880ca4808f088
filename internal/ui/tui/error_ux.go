package tui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

// userMessage is the short text shown in the status line for err.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if oe.Key != "" && strings.HasPrefix(oe.Op, "iterations.") {
				return "Iteration " + oe.Key + " not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Cannot read " + filepath.Base(oe.Path)
			}
			return "Invalid config"

		case domain.KindExecution:
			return "Filesystem error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}
