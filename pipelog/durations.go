package pipelog

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"
)

type duration struct {
	name     string
	duration time.Duration
}

// Durations tracks named durations, one per executed stage.
type Durations []duration

// Record records a duration
func (t *Durations) Record(name string, d time.Duration) {
	*t = append(*t, duration{name, d})
}

// Total returns the sum of the recorded durations.
func (t *Durations) Total() time.Duration {
	var total time.Duration
	for _, entry := range *t {
		total += entry.duration
	}
	return total
}

// Flush writes the recorded stage timings, one line per stage plus a
// summary, to the given handler.
func (t *Durations) Flush(i Interface) {
	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 4, 4, 0, ' ', 0)
	for _, entry := range *t {
		fmt.Fprintf(tw, "   %s\t%s\n", entry.name, entry.duration)
	}
	tw.Flush()

	i.Printf("ran %d stages in %s\n%s", len(*t), t.Total(), b.String())
}
