package port

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestParseRange_Valid(t *testing.T) {
	cases := map[string][2]uint16{
		"1-65535":     {1, 65535},
		"2990-3010":   {2990, 3010},
		"10-10":       {10, 10},
		" 22 - 80 ":   {22, 80},
		"65535-65535": {65535, 65535},
	}
	for spec, want := range cases {
		t.Run(spec, func(t *testing.T) {
			start, end, err := ParseRange(spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start != want[0] || end != want[1] {
				t.Fatalf("got %d-%d want %d-%d", start, end, want[0], want[1])
			}
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	cases := []string{
		"",        // empty
		"22",      // not a range
		"0-10",    // zero start
		"1-65536", // out of range
		"10-1",    // reversed range
		"a-b",     // non-numeric
		"-5",      // missing start
	}
	for _, spec := range cases {
		t.Run(spec, func(t *testing.T) {
			if _, _, err := ParseRange(spec); err == nil {
				t.Fatalf("expected error for %q", spec)
			}
		})
	}
}

func TestParseRange_ReversedIsInvalidRange(t *testing.T) {
	_, _, err := ParseRange("10-1")
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("got %v want ErrInvalidRange", err)
	}
}

func TestNumber_Flag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := Number(1)
	fs.Var(&n, "start", "start port")

	if err := fs.Parse([]string{"-start", "3000"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n != 3000 {
		t.Fatalf("got %d want 3000", n)
	}
	if n.String() != "3000" {
		t.Fatalf("got %q want 3000", n.String())
	}

	bad := flag.NewFlagSet("test", flag.ContinueOnError)
	bad.SetOutput(io.Discard)
	bad.Var(&n, "end", "end port")
	if err := bad.Parse([]string{"-end", "70000"}); err == nil {
		t.Fatalf("expected error for 70000")
	}
}
