// Package fsdata answers data availability questions by looking at the
// folder layout of a LASIF project.
package fsdata

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

const (
	rawFolder       = "raw"
	processedPrefix = "preprocessed_"
	eventExt        = ".xml"
)

// StationID extracts "NET.STA" from a waveform or window file name such as
// "BW.FURT..BHZ.mseed". The second result is false when the name has no
// station part.
func StationID(filename string) (string, bool) {
	parts := strings.SplitN(filepath.Base(filename), ".", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0] + "." + parts[1], true
}

// listFiles returns the regular file names in dir. A missing dir is empty.
func listFiles(op, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, readError(op, dir, err)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}

func listDirs(op, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, readError(op, dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// stationSet collects the station ids that own at least one file in dir.
func stationSet(op, dir string) (map[string]struct{}, error) {
	files, err := listFiles(op, dir)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		if id, ok := StationID(f); ok {
			set[id] = struct{}{}
		}
	}
	return set, nil
}

func countIn(set map[string]struct{}, stations []string) int {
	n := 0
	for _, s := range stations {
		if _, ok := set[s]; ok {
			n++
		}
	}
	return n
}

func readError(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
