package output

import (
	"bufio"
	"fmt"
	"io"

	"portsniffer/port"
)

// PrintReport writes a blank line separating the progress markers from the
// report, then one "<port> is open" line per port in report order.
func PrintReport(w io.Writer, report port.Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw)
	for _, p := range report {
		fmt.Fprintf(bw, "%d is open\n", p)
	}
	return bw.Flush()
}
