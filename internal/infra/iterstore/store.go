// Package iterstore keeps iterations as one file per iteration inside a folder.
//
// The folder is the only source of truth: nothing is cached between calls, so
// files added or removed by other tools are visible immediately.
package iterstore

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

type Store struct {
	folder string
	codec  ports.IterationCodec
	log    *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func New(folder string, codec ports.IterationCodec, opts ...Option) *Store {
	s := &Store{
		folder: filepath.Clean(folder),
		codec:  codec,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.IterationRepository = (*Store)(nil)

// Path returns the file an iteration is stored in, whether or not it exists.
func (s *Store) Path(name string) string {
	return filepath.Join(s.folder, domain.IterationFileName(name))
}

// checkName rejects short names that would place the file outside the folder.
func checkName(op, name string) error {
	file := domain.IterationFileName(name)
	if strings.ContainsAny(name, `/\`) || filepath.Base(file) != file {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Key:  name,
			Err:  fmt.Errorf("iteration name %q must not contain a path separator", name),
		}
	}
	return nil
}

// Enumerate maps every short name to the absolute path of its file.
func (s *Store) Enumerate() (map[string]string, error) {
	entries, err := os.ReadDir(s.folder)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, &domain.OpError{
			Op:   "iterations.enumerate",
			Kind: domain.KindExecution,
			Path: s.folder,
			Err:  err,
		}
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(domain.IterationFilePattern, e.Name()); !ok {
			continue
		}

		p, err := filepath.Abs(filepath.Join(s.folder, e.Name()))
		if err != nil {
			return nil, &domain.OpError{
				Op:   "iterations.enumerate",
				Kind: domain.KindExecution,
				Path: e.Name(),
				Err:  err,
			}
		}
		out[domain.ShortNameFromFilename(p)] = p
	}
	return out, nil
}

// List returns the short names sorted ascending.
func (s *Store) List() ([]string, error) {
	all, err := s.Enumerate()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Count() (int, error) {
	all, err := s.Enumerate()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (s *Store) Exists(name string) (bool, error) {
	all, err := s.Enumerate()
	if err != nil {
		return false, err
	}
	_, ok := all[name]
	return ok, nil
}

// Create writes a brand new iteration. It fails if the name is taken.
func (s *Store) Create(name, solver string, events map[string][]string, minPeriod, maxPeriod float64) error {
	if err := checkName("iterations.create", name); err != nil {
		return err
	}
	exists, err := s.Exists(name)
	if err != nil {
		return err
	}
	if exists {
		return alreadyExists("iterations.create", name, s.Path(name))
	}

	return s.Save(domain.NewIteration(name, solver, events, minPeriod, maxPeriod))
}

// Clone stores a copy of source under dest with its comments removed.
func (s *Store) Clone(source, dest string) error {
	if err := checkName("iterations.clone", dest); err != nil {
		return err
	}
	all, err := s.Enumerate()
	if err != nil {
		return err
	}
	if _, ok := all[source]; !ok {
		return notFound("iterations.clone", source, s.Path(source))
	}
	if _, ok := all[dest]; ok {
		return alreadyExists("iterations.clone", dest, s.Path(dest))
	}

	it, err := s.load(source, all[source])
	if err != nil {
		return err
	}

	it.Comments = []string{}
	it.Name = dest
	return s.Save(it)
}

// Save overwrites the file of it.Name unconditionally.
func (s *Store) Save(it domain.Iteration) error {
	if err := checkName("iterations.save", it.Name); err != nil {
		return err
	}
	path := s.Path(it.Name)

	b, err := s.codec.Encode(it)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.folder, 0o755); err != nil {
		return &domain.OpError{
			Op:   "iterations.mkdir",
			Kind: domain.KindExecution,
			Path: s.folder,
			Err:  err,
		}
	}

	// Write to a temp name first; it does not match the iteration pattern.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "iterations.write",
			Kind: domain.KindExecution,
			Key:  it.Name,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "iterations.rename",
			Kind: domain.KindExecution,
			Key:  it.Name,
			Path: path,
			Err:  err,
		}
	}

	s.log.Debug("iteration.saved", "name", it.Name, "path", path)
	return nil
}

// Get loads a fresh copy of an iteration.
func (s *Store) Get(name string) (domain.Iteration, error) {
	all, err := s.Enumerate()
	if err != nil {
		return domain.Iteration{}, err
	}
	path, ok := all[name]
	if !ok {
		return domain.Iteration{}, notFound("iterations.get", name, s.Path(name))
	}
	return s.load(name, path)
}

func (s *Store) load(name, path string) (domain.Iteration, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Iteration{}, &domain.OpError{
			Op:   "iterations.read",
			Kind: domain.KindExecution,
			Key:  name,
			Path: path,
			Err:  err,
		}
	}

	it, err := s.codec.Decode(b)
	if err != nil {
		return domain.Iteration{}, fmt.Errorf("iteration %q (%s): %w", name, path, err)
	}
	// The file name is authoritative for the key.
	it.Name = name
	return it, nil
}

func notFound(op, name, path string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Key:  name,
		Path: path,
		Err:  fmt.Errorf("iteration %q: %w", name, domain.ErrNotFound),
	}
}

func alreadyExists(op, name, path string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindAlreadyExists,
		Key:  name,
		Path: path,
		Err:  fmt.Errorf("iteration %q: %w", name, domain.ErrAlreadyExists),
	}
}
