package usecase

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/SuwenJunliu/LASIF/internal/ports"
)

// IterationDiff is a line diff between two encoded iterations.
type IterationDiff struct {
	Left, Right string
	Identical   bool
	Lines       []DiffLine
}

type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffRemoved
	DiffAdded
)

type DiffLine struct {
	Op   DiffOp
	Text string
}

func (l DiffLine) String() string {
	switch l.Op {
	case DiffRemoved:
		return "- " + l.Text
	case DiffAdded:
		return "+ " + l.Text
	default:
		return "  " + l.Text
	}
}

type CompareIterations struct {
	repo  ports.IterationRepository
	codec ports.IterationCodec
}

func NewCompareIterations(repo ports.IterationRepository, codec ports.IterationCodec) *CompareIterations {
	return &CompareIterations{repo: repo, codec: codec}
}

func (uc *CompareIterations) Execute(left, right string) (IterationDiff, error) {
	a, err := uc.encoded(left)
	if err != nil {
		return IterationDiff{}, err
	}
	b, err := uc.encoded(right)
	if err != nil {
		return IterationDiff{}, err
	}

	out := IterationDiff{Left: left, Right: right, Identical: true}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	for _, d := range diffs {
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = DiffRemoved
			out.Identical = false
		case diffmatchpatch.DiffInsert:
			op = DiffAdded
			out.Identical = false
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.Lines = append(out.Lines, DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out, nil
}

// Changes returns only the added and removed lines.
func (d IterationDiff) Changes() []DiffLine {
	var out []DiffLine
	for _, l := range d.Lines {
		if l.Op != DiffEqual {
			out = append(out, l)
		}
	}
	return out
}

func (uc *CompareIterations) encoded(name string) (string, error) {
	it, err := uc.repo.Get(name)
	if err != nil {
		return "", err
	}
	// Names differ by construction; compare content only.
	it.Name = ""
	b, err := uc.codec.Encode(it)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
