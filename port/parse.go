package port

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber parses a single port number in 0..65535.
func ParseNumber(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty port number")
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port number %q: must be in 0..65535", s)
	}
	return uint16(v), nil
}

// ParseRange parses a "start-end" token. The end is exclusive, so
// "2990-3010" covers the same ports as --start 2990 --end 3010.
func ParseRange(spec string) (start, end uint16, err error) {
	spec = strings.TrimSpace(spec)
	bounds := strings.SplitN(spec, "-", 2)
	if len(bounds) != 2 {
		return 0, 0, errors.New("invalid range token: " + spec)
	}
	start, err = ParseNumber(bounds[0])
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseNumber(bounds[1])
	if err != nil {
		return 0, 0, err
	}
	if start < 1 {
		return 0, 0, fmt.Errorf("%w: start port must be > 0", ErrInvalidRange)
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: range start greater than end: %s", ErrInvalidRange, spec)
	}
	return start, end, nil
}

// Number is a flag.Value holding a port number.
type Number uint16

func (n *Number) String() string {
	if n == nil {
		return "0"
	}
	return strconv.Itoa(int(*n))
}

func (n *Number) Set(s string) error {
	v, err := ParseNumber(s)
	if err != nil {
		return err
	}
	*n = Number(v)
	return nil
}
