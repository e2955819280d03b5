//go:build !windows
// +build !windows

package netutil

import "testing"

func TestOpenFileLimit(t *testing.T) {
	n, err := OpenFileLimit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// stdin, stdout and stderr are always open
	if n < 3 {
		t.Fatalf("implausible open file limit %d", n)
	}
}
