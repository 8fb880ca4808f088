package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "iteration not found",
			err:  &domain.OpError{Op: "iterations.get", Kind: domain.KindNotFound, Key: "3", Err: domain.ErrNotFound},
			want: "Iteration '3' not found.",
		},
		{
			name: "wrapped iteration exists",
			err:  fmt.Errorf("clone: %w", &domain.OpError{Op: "iterations.clone", Kind: domain.KindAlreadyExists, Key: "2"}),
			want: "Iteration '2' already exists.",
		},
		{
			name: "no project",
			err:  &domain.OpError{Op: "projectfinder.findroot", Kind: domain.KindNotFound, Path: "/tmp/x"},
			want: "No LASIF project found in '/tmp/x' or its parents. Run 'lasif init_project <folder>' first.",
		},
		{
			name: "invalid config",
			err:  &domain.OpError{Op: "projectconfig.map", Kind: domain.KindInvalidConfig, Path: "/p/config.yaml", Err: errors.New("lasif_project.name: project name is required")},
			want: "Invalid config.yaml: lasif_project.name: project name is required",
		},
		{
			name: "plain",
			err:  errors.New("accepts 1 arg(s), received 0"),
			want: "accepts 1 arg(s), received 0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := userMessage(tc.err); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
