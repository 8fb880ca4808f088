package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

// userMessage turns an error into the one-line text printed after "lasif <cmd>: ".
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}

	switch oe.Kind {
	case domain.KindNotFound:
		switch {
		case strings.HasPrefix(oe.Op, "iterations.") && oe.Key != "":
			return fmt.Sprintf("Iteration '%s' not found.", oe.Key)
		case oe.Op == "projectfinder.findroot":
			return fmt.Sprintf("No LASIF project found in '%s' or its parents. Run 'lasif init_project <folder>' first.", oe.Path)
		case oe.Op == "projectconfig.load":
			return fmt.Sprintf("Project configuration '%s' not found.", oe.Path)
		}
		return "Not found."

	case domain.KindAlreadyExists:
		if strings.HasPrefix(oe.Op, "iterations.") && oe.Key != "" {
			return fmt.Sprintf("Iteration '%s' already exists.", oe.Key)
		}
		return "Already exists."

	case domain.KindInvalidConfig:
		inner := oe.Err
		if inner == nil {
			inner = domain.ErrInvalidConfig
		}
		if strings.TrimSpace(oe.Path) != "" {
			return fmt.Sprintf("Invalid %s: %v", filepath.Base(oe.Path), inner)
		}
		return inner.Error()
	}

	return err.Error()
}
