package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "iterations.get",
		Kind: KindNotFound,
		Key:  "3",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("clone: %w", &OpError{
		Op:   "iterations.clone",
		Kind: KindAlreadyExists,
		Key:  "2",
		Err:  ErrAlreadyExists,
	})

	if !IsKind(err, KindAlreadyExists) {
		t.Fatalf("expected IsKind to see through fmt wrapping")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected sentinel to be reachable")
	}
	if KeyOf(err) != "2" {
		t.Fatalf("expected key 2, got %q", KeyOf(err))
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{
		Op:   "iterations.get",
		Kind: KindNotFound,
		Key:  "9",
		Path: "/p/ITERATION_9.xml",
		Err:  ErrNotFound,
	}
	msg := err.Error()
	for _, want := range []string{"iterations.get", "not_found", "key=9", "path=/p/ITERATION_9.xml"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}

	var nilErr *OpError
	if nilErr.Error() != "<nil>" {
		t.Fatalf("expected <nil> for nil receiver")
	}
}

func TestOpErrorMatchesKindSentinel(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/p/ITERATION_1.xml", Err: fs.ErrPermission}
	err := fmt.Errorf("save: %w", &OpError{Op: "iterations.write", Kind: KindExecution, Err: cause})

	if !errors.Is(err, ErrExecution) {
		t.Fatalf("expected execution sentinel to match")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("expected other sentinels not to match")
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) || !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected the underlying path error to stay reachable")
	}
}
