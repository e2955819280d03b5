package scanner

import (
	"math/rand"
	"reflect"
	"testing"

	"portsniffer/port"
)

func TestCollect_SortsAnyArrivalOrder(t *testing.T) {
	want := port.Report{22, 80, 443, 3000, 3005, 8080, 65535}

	for seed := int64(0); seed < 20; seed++ {
		arrival := append([]uint16(nil), want...)
		r := rand.New(rand.NewSource(seed))
		r.Shuffle(len(arrival), func(i, j int) { arrival[i], arrival[j] = arrival[j], arrival[i] })

		outcomes := make(chan port.ProbeOutcome, len(arrival))
		for _, p := range arrival {
			outcomes <- port.ProbeOutcome{Port: p, Reachable: true}
		}
		close(outcomes)

		if got := Collect(outcomes); !reflect.DeepEqual(got, want) {
			t.Fatalf("seed %d: got %v want %v", seed, got, want)
		}
	}
}

func TestCollect_IgnoresUnreachable(t *testing.T) {
	outcomes := make(chan port.ProbeOutcome, 3)
	outcomes <- port.ProbeOutcome{Port: 9, Reachable: true}
	outcomes <- port.ProbeOutcome{Port: 5, Reachable: false}
	outcomes <- port.ProbeOutcome{Port: 1, Reachable: true}
	close(outcomes)

	if got := Collect(outcomes); !reflect.DeepEqual(got, port.Report{1, 9}) {
		t.Fatalf("got %v want [1 9]", got)
	}
}

func TestCollect_ClosedEmptyChannel(t *testing.T) {
	outcomes := make(chan port.ProbeOutcome)
	close(outcomes)

	if got := Collect(outcomes); len(got) != 0 {
		t.Fatalf("expected empty report, got %v", got)
	}
}

func TestCollect_ManyProducers(t *testing.T) {
	outcomes := make(chan port.ProbeOutcome)
	done := make(chan struct{})
	const producers = 200
	for i := 0; i < producers; i++ {
		go func(p uint16) {
			outcomes <- port.ProbeOutcome{Port: p, Reachable: true}
			done <- struct{}{}
		}(uint16(producers - i))
	}
	go func() {
		for i := 0; i < producers; i++ {
			<-done
		}
		close(outcomes)
	}()

	got := Collect(outcomes)
	if len(got) != producers {
		t.Fatalf("got %d ports want %d", len(got), producers)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("report not strictly ascending at %d: %v", i, got)
		}
	}
}

func TestState_String(t *testing.T) {
	cases := map[State]string{
		Idle:      "idle",
		Scanning:  "scanning",
		Draining:  "draining",
		Done:      "done",
		State(42): "unknown",
	}
	for st, want := range cases {
		if st.String() != want {
			t.Fatalf("got %q want %q", st.String(), want)
		}
	}
}
