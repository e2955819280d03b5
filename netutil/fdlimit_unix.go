//go:build !windows
// +build !windows

package netutil

import "syscall"

// OpenFileLimit returns the process soft limit on open file descriptors.
func OpenFileLimit() (uint64, error) {
	var rl syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rl); err != nil {
		return 0, err
	}
	return uint64(rl.Cur), nil
}
