package bench_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/amp-labs/amp-flat/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []bench.Result {
	return []bench.Result{
		{
			Workload:    bench.Workload{Name: "set-small-int-none", Storage: bench.StorageSmall, Ops: 10},
			FinalLen:    4,
			Inserted:    6,
			Spills:      1,
			Fingerprint: 0xabcdef,
			Elapsed:     3 * time.Millisecond,
		},
		{
			Workload: bench.Workload{Name: "broken", Storage: bench.StorageVector},
			Err:      "invalid workload",
		},
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	bench.WriteTable(&buf, sampleResults())

	out := buf.String()
	assert.Contains(t, out, "WORKLOAD")
	assert.Contains(t, out, "set-small-int-none")
	assert.Contains(t, out, "0000000000abcdef")
	assert.Contains(t, out, "invalid workload")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, bench.WriteJSON(&buf, sampleResults()))

	var decoded []bench.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResults(), decoded)
}
