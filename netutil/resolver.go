package netutil

import (
	"errors"
	"fmt"
	"net"
	"net/netip"

	"go4.org/netipx"
)

// DefaultTarget is scanned when no address is given.
const DefaultTarget = "127.0.0.1"

var (
	ErrIPv6NotSupported = errors.New("IPv6 addresses are not supported")
	ErrNoIPv4           = errors.New("no A records found for host")
)

// lookupIP is swapped out in tests.
var lookupIP = net.LookupIP

// ResolveTargetToIPv4 resolves the given target (hostname or IP string)
// and returns the first IPv4 address.
// If the target is an IPv6 literal or an IPv6-only host, an error is returned.
func ResolveTargetToIPv4(target string) (netip.Addr, error) {
	if target == "" {
		target = DefaultTarget
	}
	// If target is already an IP literal, accept IPv4 only.
	if ip, err := netip.ParseAddr(target); err == nil {
		ip = ip.Unmap()
		if ip.Is4() {
			return ip, nil
		}
		return netip.Addr{}, ErrIPv6NotSupported
	}

	ips, err := lookupIP(target)
	if err != nil {
		return netip.Addr{}, err
	}
	sawV6 := false
	for _, ip := range ips {
		addr, ok := netipx.FromStdIP(ip)
		if !ok {
			continue
		}
		if addr.Is4() {
			return addr, nil
		}
		sawV6 = true
	}
	if sawV6 {
		return netip.Addr{}, fmt.Errorf("%w: %s resolves only to IPv6 addresses", ErrIPv6NotSupported, target)
	}
	return netip.Addr{}, ErrNoIPv4
}
