package dispatch

import (
	"fmt"
	"io"
)

// RenderUnknown writes the message shown for an unresolved command token.
func RenderUnknown(w io.Writer, prog, token string, candidates []string) error {
	if _, err := fmt.Fprintf(w, "%s: '%s' is not a LASIF command. See '%s --help'.\n", prog, token, prog); err != nil {
		return err
	}

	switch len(candidates) {
	case 0:
		return nil
	case 1:
		_, err := fmt.Fprintf(w, "\nDid you mean this?\n\t%s\n", candidates[0])
		return err
	}

	if _, err := io.WriteString(w, "\nDid you mean one of these?\n"); err != nil {
		return err
	}
	for _, c := range candidates {
		if _, err := fmt.Fprintf(w, "    %s\n", c); err != nil {
			return err
		}
	}
	return nil
}
