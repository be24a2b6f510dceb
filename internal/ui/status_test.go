package ui

import (
	"fmt"
	"testing"

	"github.com/ebubekirbastama/trendyol-color-variants-viewer/internal/trendyol"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&trendyol.HTTPError{URL: "u", StatusCode: 403}, "HTTP 403 from Trendyol."},
		{&trendyol.NetworkError{URL: "u", Err: fmt.Errorf("timeout")}, "Network error."},
		{&trendyol.ParseError{Reason: "bad shape"}, "Unexpected payload."},
		{trendyol.ErrServiceClosed, "Service closed."},
		{fmt.Errorf("boom"), "Error."},
	}
	for _, tc := range cases {
		if got := statusForError(tc.err); got != tc.want {
			t.Fatalf("statusForError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}

	wrapped := fmt.Errorf("fetch: %w", &trendyol.HTTPError{StatusCode: 500})
	if got := statusForError(wrapped); got != "HTTP 500 from Trendyol." {
		t.Fatalf("wrapped error not classified: %q", got)
	}
}
