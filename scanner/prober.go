package scanner

import (
	"context"
	"errors"
	"io"
	"syscall"
	"time"

	"golang.org/x/sync/semaphore"

	"portsniffer/port"
)

// ProgressMarker is written once per successful connection.
const ProgressMarker = '.'

var progressMarker = []byte{ProgressMarker}

// fdWait is how long a dial that ran out of local descriptors waits before
// trying again.
const fdWait = 5 * time.Millisecond

// Probe performs a TCP connect to target and reports whether it succeeded.
// The connection is closed immediately; no data is exchanged.
// Refused, reset, unreachable and timed-out dials mean closed or filtered.
// Running out of local file descriptors says nothing about the port, so
// Probe waits and dials again until the dial gets a real answer or ctx ends.
func Probe(ctx context.Context, d Dialer, target string) bool {
	for {
		conn, err := d.DialContext(ctx, "tcp", target)
		if err == nil {
			_ = conn.Close()
			return true
		}
		if !isLocalResourceErr(err) {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(fdWait):
		}
	}
}

// isLocalResourceErr reports whether err is descriptor exhaustion on this host.
func isLocalResourceErr(err error) bool {
	return errors.Is(err, syscall.EMFILE) || errors.Is(err, syscall.ENFILE)
}

type prober struct {
	req      port.ScanRequest
	dialer   Dialer
	progress io.Writer
	// slots bounds the sockets open at once; goroutines are still one per port.
	slots *semaphore.Weighted
}

// probe checks one port. Failures are silent; an open port produces a
// progress marker and exactly one outcome.
func (p prober) probe(ctx context.Context, portNum uint16, outcomes chan<- port.ProbeOutcome) {
	if err := p.slots.Acquire(ctx, 1); err != nil {
		return
	}
	open := Probe(ctx, p.dialer, p.req.Target(portNum))
	p.slots.Release(1)
	if !open {
		return
	}
	_, _ = p.progress.Write(progressMarker)
	outcomes <- port.ProbeOutcome{Port: portNum, Reachable: true}
}
