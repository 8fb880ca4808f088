package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

// RenderString replaces {{name}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	out.Grow(len(input))
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderError("", errors.New("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderError("", errors.New("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", renderError(key, fmt.Errorf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func renderError(key string, err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Key:  key,
		Err:  err,
	}
}
