package buildinfo

import "fmt"

// Set through -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String is the text printed by `lasif --version`.
func String() string {
	return fmt.Sprintf("LASIF version %s", Version)
}

func Details() string {
	return fmt.Sprintf("%s (commit=%s, date=%s)", String(), Commit, Date)
}
