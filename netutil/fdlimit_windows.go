//go:build windows
// +build windows

package netutil

import "errors"

// On Windows builds there is no RLIMIT_NOFILE; callers fall back to a fixed budget.
func OpenFileLimit() (uint64, error) {
	return 0, errors.New("open file limit not available on Windows")
}
