package weather

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("Nonexistent City123")
	if err.Error() != "City 'Nonexistent City123' not found" {
		t.Errorf("message = %q", err.Error())
	}
	if KindOf(err) != KindNotFound {
		t.Errorf("kind = %v, want not_found", KindOf(err))
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"transport", TransportErrorf("request failed: %v", "dial tcp"), KindTransport},
		{"parse", ParseErrorf("missing main block"), KindParse},
		{"not ours", errors.New("something else"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %v, want %v", got, tt.want)
			}
		})
	}
}

// A lookup error wrapped by an intermediate layer still reports its kind,
// so the failure shape survives pass-through unchanged.
func TestKindOfWrapped(t *testing.T) {
	inner := NotFoundError("Atlantis")
	wrapped := fmt.Errorf("lookup: %w", inner)

	if got := KindOf(wrapped); got != KindNotFound {
		t.Errorf("KindOf(wrapped) = %v, want not_found", got)
	}
}

func TestKindString(t *testing.T) {
	pairs := map[Kind]string{
		KindNotFound:  "not_found",
		KindTransport: "transport",
		KindParse:     "parse",
		KindUnknown:   "unknown",
	}
	for kind, want := range pairs {
		if kind.String() != want {
			t.Errorf("%d.String() = %q, want %q", kind, kind.String(), want)
		}
	}
}
