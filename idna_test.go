package idna

import (
	"errors"
	"testing"

	idnaerr "github.com/wippyai/idna/errors"
)

func TestToASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"pure ascii", "example.com", "example.com"},
		{"already encoded", "xn--6qq79v.com", "xn--6qq79v.com"},
		{"spanish", "mañana.com", "xn--maana-pta.com"},
		{"email", "user@façade.com", "user@xn--faade-zra.com"},
		{"emoji", "emoji-😀.com", "xn--emoji--8v74e.com"},
		{"mixed labels", "bücher.example.日本", "xn--bcher-kva.example.xn--wgv71a"},
		{"ideographic full stop", "日本。jp", "xn--wgv71a.jp"},
		{"fullwidth full stop", "日本．jp", "xn--wgv71a.jp"},
		{"halfwidth full stop", "日本｡jp", "xn--wgv71a.jp"},
		{"email local part untouched", "mañana@example.com", "mañana@example.com"},
		{"second at is literal", "a@b@ñ.com", "a@xn--b@-0ja.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToASCII(tt.input)
			if err != nil {
				t.Fatalf("ToASCII(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToASCII(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFirstAtPartitionsDomain(t *testing.T) {
	// Everything before the first '@' passes through once; a second '@' is
	// literal content inside the first domain label, not a new local part.
	got, err := ToASCII("a@b@ñ.com")
	if err != nil {
		t.Fatalf("ToASCII error: %v", err)
	}
	if want := "a@xn--b@-0ja.com"; got != want {
		t.Errorf("ToASCII(%q) = %q, want %q", "a@b@ñ.com", got, want)
	}

	// On the way back the literal '@' keeps the label from matching the
	// xn-- prefix, so it survives untouched.
	got, err = ToUnicode("x@y@xn--ida.com")
	if err != nil {
		t.Fatalf("ToUnicode error: %v", err)
	}
	if want := "x@y@xn--ida.com"; got != want {
		t.Errorf("ToUnicode(%q) = %q, want %q", "x@y@xn--ida.com", got, want)
	}
}

func TestToUnicode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"pure ascii", "example.com", "example.com"},
		{"spanish", "xn--maana-pta.com", "mañana.com"},
		{"uppercase prefix", "XN--MAANA-PTA.com", "mañana.com"},
		{"email", "user@xn--faade-zra.com", "user@façade.com"},
		{"emoji", "xn--emoji--8v74e.com", "emoji-😀.com"},
		{"not encoded passthrough", "mañana.com", "mañana.com"},
		{"plain xn label kept", "xn.com", "xn.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUnicode(tt.input)
			if err != nil {
				t.Fatalf("ToUnicode(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToUnicode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"example.com",
		"mañana.com",
		"user@façade.com",
		"xn--maana-pta.com",
		"emoji-😀.com",
	}

	for _, s := range inputs {
		once, err := ToASCII(s)
		if err != nil {
			t.Fatalf("ToASCII(%q) error: %v", s, err)
		}
		twice, err := ToASCII(once)
		if err != nil {
			t.Fatalf("ToASCII(%q) error: %v", once, err)
		}
		if once != twice {
			t.Errorf("ToASCII not idempotent on %q: %q != %q", s, once, twice)
		}

		uonce, err := ToUnicode(s)
		if err != nil {
			t.Fatalf("ToUnicode(%q) error: %v", s, err)
		}
		utwice, err := ToUnicode(uonce)
		if err != nil {
			t.Fatalf("ToUnicode(%q) error: %v", uonce, err)
		}
		if uonce != utwice {
			t.Errorf("ToUnicode not idempotent on %q: %q != %q", s, uonce, utwice)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"example.com",
		"mañana.com",
		"bücher.example.日本",
		"user@façade.com",
		"emoji-😀.com",
	}

	for _, s := range inputs {
		ascii, err := ToASCII(s)
		if err != nil {
			t.Fatalf("ToASCII(%q) error: %v", s, err)
		}
		back, err := ToUnicode(ascii)
		if err != nil {
			t.Fatalf("ToUnicode(%q) error: %v", ascii, err)
		}
		if back != s {
			t.Errorf("ToUnicode(ToASCII(%q)) = %q", s, back)
		}
	}
}

func TestBadLabelFailsWholeCall(t *testing.T) {
	// The second label is a malformed digit stream; nothing of the rest of
	// the domain survives.
	_, err := ToUnicode("good.xn--999.also-good.com")
	if err == nil {
		t.Fatal("ToUnicode succeeded, want error")
	}
	if !errors.Is(err, &idnaerr.Error{Kind: idnaerr.KindInvalidInput}) {
		t.Errorf("error = %v, want kind invalid_input", err)
	}

	var e *idnaerr.Error
	if !errors.As(err, &e) {
		t.Fatal("error is not structured")
	}
	if e.Label != "xn--999" {
		t.Errorf("Label = %q, want %q", e.Label, "xn--999")
	}
}

func TestSeparatorNormalization(t *testing.T) {
	// All separator variants come out as '.', even on pass-through labels.
	got, err := ToASCII("a。b．c｡d")
	if err != nil {
		t.Fatalf("ToASCII error: %v", err)
	}
	if got != "a.b.c.d" {
		t.Errorf("got %q, want %q", got, "a.b.c.d")
	}
}
