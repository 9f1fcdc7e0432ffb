package pipelog

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationsFlush(t *testing.T) {
	var d Durations
	d.Record("Export to file", 80*time.Millisecond)
	d.Record("Evaluate model", 120*time.Millisecond)

	require.Equal(t, 200*time.Millisecond, d.Total())

	var buf bytes.Buffer
	d.Flush(New(&buf, "[test] "))

	out := buf.String()
	assert.Contains(t, out, "ran 2 stages in 200ms")
	assert.Contains(t, out, "Export to file")
	assert.Contains(t, out, "Evaluate model")
}
