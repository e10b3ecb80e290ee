package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/bodygraph"
	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/telemetry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubComputer fails any request whose date is "bad" and otherwise returns a
// Generator chart. It records the zone each request was resolved with.
type stubComputer struct {
	mu    sync.Mutex
	zones []string
}

func (s *stubComputer) Request(req birth.Request, defaultZone string) (*engine.Chart, error) {
	s.mu.Lock()
	s.zones = append(s.zones, defaultZone)
	s.mu.Unlock()
	if req.Date == "bad" {
		return nil, errors.New("malformed date")
	}
	return &engine.Chart{Bodygraph: bodygraph.Bodygraph{Type: bodygraph.Generator, Profile: "1/3"}}, nil
}

type countingRecorder struct {
	mu     sync.Mutex
	ok     int
	failed int
}

func (c *countingRecorder) ObserveBatchItem(ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.ok++
		return
	}
	c.failed++
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"people.yaml", FormatYAML},
		{"people.YML", FormatYAML},
		{"people.jsonl", FormatJSONL},
		{"people.ndjson", FormatJSONL},
		{"-", FormatJSONL},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFor(tt.path), tt.path)
	}
}

func TestReadRequestsJSONL(t *testing.T) {
	t.Parallel()

	in := `{"id":"ada","date":"1815-12-10","time":"12:00"}

# comment
{"name":"Grace","date":"1906-12-09","time":"08:30","timezone":"America/New_York"}
`
	reqs, err := ReadRequests(strings.NewReader(in), FormatJSONL)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "ada", reqs[0].ID)
	assert.Equal(t, "America/New_York", reqs[1].Timezone)

	_, err = ReadRequests(strings.NewReader(`{"date":"1815-12-10","when":"noon"}`), FormatJSONL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReadRequestsYAML(t *testing.T) {
	t.Parallel()

	seq := `- id: ada
  date: "1815-12-10"
  time: "12:00"
- id: grace
  date: "1906-12-09"
  time: "08:30"
`
	reqs, err := ReadRequests(strings.NewReader(seq), FormatYAML)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "grace", reqs[1].ID)

	stream := `id: ada
date: "1815-12-10"
time: "12:00"
---
id: grace
date: "1906-12-09"
time: "08:30"
latitude: 40.7
`
	reqs, err = ReadRequests(strings.NewReader(stream), FormatYAML)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	require.NotNil(t, reqs[1].Latitude)
	assert.InDelta(t, 40.7, *reqs[1].Latitude, 1e-9)
}

func TestReadRequestsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := ReadRequests(strings.NewReader(""), "csv")
	assert.ErrorIs(t, err, ErrUnknownInput)
}

func TestRunKeepsOrderAndIsolatesFailures(t *testing.T) {
	t.Parallel()

	reqs := []birth.Request{
		{ID: "a", Date: "2000-01-01", Time: "00:00"},
		{ID: "b", Date: "bad", Time: "00:00"},
		{Date: "2000-01-03", Time: "00:00"},
		{ID: "d", Date: "2000-01-04", Time: "00:00"},
	}
	comp := &stubComputer{}
	rec := &countingRecorder{}
	r := NewRunner(comp, 3, zaptest.NewLogger(t), WithRecorder(rec), WithDefaultZone("Europe/Paris"))

	outcomes, err := r.Run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	for i, o := range outcomes {
		assert.Equal(t, i, o.Index)
		assert.NotEmpty(t, o.ID)
	}
	assert.Equal(t, "a", outcomes[0].ID)
	assert.True(t, outcomes[0].OK())
	assert.False(t, outcomes[1].OK())
	assert.Nil(t, outcomes[1].Chart)
	assert.Contains(t, outcomes[1].Error, "malformed date")
	assert.Equal(t, bodygraph.Generator, outcomes[3].Chart.Type)

	assert.Equal(t, 3, rec.ok)
	assert.Equal(t, 1, rec.failed)
	for _, z := range comp.zones {
		assert.Equal(t, "Europe/Paris", z)
	}
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(&stubComputer{}, 2, nil)
	outcomes, err := r.Run(ctx, []birth.Request{{Date: "2000-01-01", Time: "00:00"}})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, outcomes, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, outcomes))
	assert.Empty(t, buf.String())
}

func TestRunJournalsEvents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := telemetry.NewEmitter(path)
	require.NoError(t, err)

	r := NewRunner(&stubComputer{}, 1, nil, WithEmitter(em))
	_, err = r.Run(context.Background(), []birth.Request{
		{ID: "a", Date: "2000-01-01", Time: "00:00"},
		{ID: "b", Date: "bad", Time: "00:00"},
	})
	require.NoError(t, err)
	require.NoError(t, em.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	events, err := telemetry.Read(f)
	require.NoError(t, err)

	kinds := make([]string, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
		assert.Equal(t, events[0].RunID, e.RunID)
	}
	assert.Equal(t, []string{
		telemetry.KindBatchStart,
		telemetry.KindChartDone,
		telemetry.KindChartFailed,
		telemetry.KindBatchDone,
	}, kinds)
}

func TestRunWithEngine(t *testing.T) {
	t.Parallel()

	e, err := engine.New(zaptest.NewLogger(t))
	require.NoError(t, err)

	reqs := make([]birth.Request, 0, 24)
	for m := 1; m <= 12; m++ {
		for _, clock := range []string{"03:00", "15:00"} {
			reqs = append(reqs, birth.Request{Date: fmt.Sprintf("1990-%02d-15", m), Time: clock})
		}
	}
	outcomes, err := NewRunner(e, 4, zaptest.NewLogger(t)).Run(context.Background(), reqs)
	require.NoError(t, err)

	for i, o := range outcomes {
		require.True(t, o.OK(), "item %d: %s", i, o.Error)
		want, err := e.Request(reqs[i], "")
		require.NoError(t, err)
		assert.Equal(t, want.Bodygraph.Type, o.Chart.Type, "item %d", i)
		assert.Equal(t, want.Bodygraph.Gates, o.Chart.Gates, "item %d", i)
	}
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()

	outcomes := []Outcome{
		{Index: 0, ID: "a", Chart: &bodygraph.Bodygraph{Type: bodygraph.Projector}},
		{Index: 1, ID: "b", Error: "malformed date"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, outcomes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "a", first["id"])
	assert.NotContains(t, first, "error")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "malformed date", second["error"])
	assert.NotContains(t, second, "chart")
}
