package scanner

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"portsniffer/netutil"
	"portsniffer/port"
)

const (
	// fdReserve is kept free for stdio, the resolver and the runtime.
	fdReserve = 64
	// fallbackDialLimit is used when the open-file limit cannot be read.
	fallbackDialLimit = 1024
	maxDialLimit      = 65535
)

// ErrAlreadyStarted is returned when a Scanner is started a second time.
var ErrAlreadyStarted = errors.New("scanner already started")

// Dialer opens the TCP connections used by probes. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Config contains runtime configuration for the Scanner.
type Config struct {
	Request port.ScanRequest
	// Dialer defaults to a zero net.Dialer, i.e. the platform connect timeout.
	Dialer Dialer
	// Progress receives one marker byte per open port. Defaults to io.Discard.
	Progress io.Writer
	// Logger receives verbose lifecycle lines. Defaults to a discarding logger.
	Logger *log.Logger
	// DialLimit caps the sockets open at once. Zero derives it from the
	// process open-file limit.
	DialLimit int64
}

// Scanner runs a single scan: one probe goroutine per port, fanned in to a
// collector that sorts the open ports once every probe has resolved.
type Scanner struct {
	cfg     Config
	state   atomic.Int32
	started atomic.Bool
}

// New creates a Scanner in the Idle state.
func New(cfg Config) *Scanner {
	if cfg.Dialer == nil {
		cfg.Dialer = &net.Dialer{}
	}
	if cfg.Progress == nil {
		cfg.Progress = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	if cfg.DialLimit <= 0 {
		cfg.DialLimit = DefaultDialLimit()
	}
	return &Scanner{cfg: cfg}
}

// State returns the scan's current lifecycle state.
func (s *Scanner) State() State {
	return State(s.state.Load())
}

func (s *Scanner) setState(st State) {
	s.state.Store(int32(st))
	s.cfg.Logger.Printf("state -> %s", st)
}

// DefaultDialLimit derives a socket budget from the open-file limit,
// leaving fdReserve descriptors for everything else.
func DefaultDialLimit() int64 {
	n, err := netutil.OpenFileLimit()
	if err != nil {
		return fallbackDialLimit
	}
	switch {
	case n <= 2*fdReserve:
		return int64(max(n/2, 1))
	case n-fdReserve > maxDialLimit:
		return maxDialLimit
	default:
		return int64(n - fdReserve)
	}
}

// Start launches one probe per port in the request and returns the
// outcome channel without waiting on any of them. The channel is closed
// once every probe has returned, which is the only completion signal.
// The state stays Draining until the channel is handed to Scanner.Collect
// (Run does both).
func (s *Scanner) Start(ctx context.Context) (<-chan port.ProbeOutcome, error) {
	if !s.started.CompareAndSwap(false, true) {
		return nil, ErrAlreadyStarted
	}
	req := s.cfg.Request
	p := prober{
		req:      req,
		dialer:   s.cfg.Dialer,
		progress: s.cfg.Progress,
		slots:    semaphore.NewWeighted(s.cfg.DialLimit),
	}

	// Buffered to the range size so a probe never blocks on send.
	outcomes := make(chan port.ProbeOutcome, req.Len())

	s.setState(Scanning)
	s.cfg.Logger.Printf("scanning %s (%d probes, %d sockets at once)", req, req.Len(), s.cfg.DialLimit)

	var g errgroup.Group
	for _, portNum := range req.Ports() {
		g.Go(func() error {
			p.probe(ctx, portNum, outcomes)
			return nil
		})
	}
	s.setState(Draining)

	// Probes only send before g.Wait returns, so closing here cannot race a send.
	go func() {
		_ = g.Wait()
		close(outcomes)
	}()

	return outcomes, nil
}

// Run starts the scan, waits for every probe and returns the sorted report.
func (s *Scanner) Run(ctx context.Context) (port.Report, error) {
	begin := time.Now()
	outcomes, err := s.Start(ctx)
	if err != nil {
		return nil, err
	}
	report := s.Collect(outcomes)
	s.cfg.Logger.Printf("scan finished: %d open in %s", len(report), time.Since(begin).Round(time.Millisecond))
	return report, nil
}

// Collect drains the channel returned by Start and moves the scan to Done.
func (s *Scanner) Collect(outcomes <-chan port.ProbeOutcome) port.Report {
	report := Collect(outcomes)
	s.setState(Done)
	return report
}
