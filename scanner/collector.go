package scanner

import (
	"slices"

	"portsniffer/port"
)

// Collect drains outcomes until the channel is closed, then returns the
// reachable ports sorted ascending. Arrival order does not matter.
func Collect(outcomes <-chan port.ProbeOutcome) port.Report {
	report := port.Report{}
	for o := range outcomes {
		if o.Reachable {
			report = append(report, o.Port)
		}
	}
	slices.Sort(report)
	return report
}
