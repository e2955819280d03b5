package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"portsniffer/port"
)

// WriteReportFile renders report the same way PrintReport does, minus the
// leading separator, and writes it to path atomically.
func WriteReportFile(path string, report port.Report) error {
	var buf bytes.Buffer
	for _, p := range report {
		fmt.Fprintf(&buf, "%d is open\n", p)
	}
	return WriteAtomic(path, buf.Bytes())
}

// WriteAtomic writes data to a temp file next to path, syncs it and renames
// it over path. On any failure the temp file is removed and path is untouched.
func WriteAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "portsniffer-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp -> final: %w", err)
	}
	return nil
}
