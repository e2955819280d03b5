package port

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
)

var (
	// ErrInvalidRange is returned when a port range violates 0 < start <= end.
	ErrInvalidRange = errors.New("invalid port range")
	// ErrNotIPv4 is returned when the scan address is not an IPv4 address.
	ErrNotIPv4 = errors.New("scan address must be IPv4")
)

// ScanRequest describes one scan: every port in [StartPort, EndPort) on Address.
// It is immutable once built and shared read-only by all probes.
type ScanRequest struct {
	Address   netip.Addr
	StartPort uint16
	EndPort   uint16
}

// NewScanRequest validates the inputs and returns a ScanRequest.
// EndPort is exclusive: start == end is a valid, empty range.
func NewScanRequest(addr netip.Addr, start, end uint16) (ScanRequest, error) {
	if !addr.IsValid() || !addr.Unmap().Is4() {
		return ScanRequest{}, fmt.Errorf("%w: %v", ErrNotIPv4, addr)
	}
	if start == 0 {
		return ScanRequest{}, fmt.Errorf("%w: start port must be > 0", ErrInvalidRange)
	}
	if start > end {
		return ScanRequest{}, fmt.Errorf("%w: start %d greater than end %d", ErrInvalidRange, start, end)
	}
	return ScanRequest{Address: addr.Unmap(), StartPort: start, EndPort: end}, nil
}

// Len returns the number of ports the request covers.
func (r ScanRequest) Len() int {
	return int(r.EndPort) - int(r.StartPort)
}

// Ports returns every port of the range in ascending order.
func (r ScanRequest) Ports() []uint16 {
	out := make([]uint16, 0, r.Len())
	for p := r.StartPort; p < r.EndPort; p++ {
		out = append(out, p)
	}
	return out
}

// Target returns the host:port dial string for p.
func (r ScanRequest) Target(p uint16) string {
	return net.JoinHostPort(r.Address.String(), strconv.Itoa(int(p)))
}

func (r ScanRequest) String() string {
	return fmt.Sprintf("%s [%d, %d)", r.Address, r.StartPort, r.EndPort)
}

// ProbeOutcome is what a probe reports for its port. Only reachable
// outcomes are ever sent to the collector.
type ProbeOutcome struct {
	Port      uint16
	Reachable bool
}

// Report is the final, ascending list of open ports.
type Report []uint16
