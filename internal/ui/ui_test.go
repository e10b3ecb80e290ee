package ui

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/bodygraph/internal/telemetry"
)

// captureStderr redirects os.Stderr to a pipe and returns the captured output.
func captureStderr(fn func()) string {
	r, w, _ := os.Pipe()
	orig := os.Stderr
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = orig

	out, _ := io.ReadAll(r)
	r.Close()
	return string(out)
}

func TestValidateResult_AllPass(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.ValidateResult([]CheckResult{{Name: "gate-to-center"}, {Name: "channels"}})
	})

	for _, substr := range []string{"gate-to-center", "channels", "2 check(s) passed"} {
		if !strings.Contains(output, substr) {
			t.Errorf("expected output to contain %q, got:\n%s", substr, output)
		}
	}
}

func TestValidateResult_Failure(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.ValidateResult([]CheckResult{
			{Name: "gate-to-center"},
			{Name: "catalog", Err: errors.New("type \"Projector\" is incomplete")},
		})
	})

	for _, substr := range []string{"1 of 2 check(s) failed", "Projector"} {
		if !strings.Contains(output, substr) {
			t.Errorf("expected output to contain %q, got:\n%s", substr, output)
		}
	}
}

func TestBatchSummary(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.BatchSummary(BatchSummaryData{Total: 10, Failed: 2, Duration: 1500 * time.Millisecond, Output: "charts.jsonl"})
	})

	checks := []struct {
		name   string
		substr string
	}{
		{"ok count", "8 ok"},
		{"failed count", "2 failed"},
		{"duration", "1.5s"},
		{"output", "charts.jsonl"},
	}
	for _, c := range checks {
		if !strings.Contains(output, c.substr) {
			t.Errorf("expected output to contain %s (%q), got:\n%s", c.name, c.substr, output)
		}
	}
}

func TestChartLines(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.ChartDone("ada", "Generator", "inbox/ada.chart.json")
		p.ChartDone("grace", "Projector", "")
		p.ChartFailed("bob", errors.New("invalid date"))
	})

	for _, substr := range []string{"ada", "inbox/ada.chart.json", "grace", "Projector", "bob", "invalid date"} {
		if !strings.Contains(output, substr) {
			t.Errorf("expected output to contain %q, got:\n%s", substr, output)
		}
	}
}

func TestEventLine(t *testing.T) {
	t.Parallel()

	evt := telemetry.Event{
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 600_000_000, time.UTC),
		Kind:      telemetry.KindChartDone,
		RunID:     "r1",
		ItemID:    "ada",
		Data:      map[string]string{"type": "Generator"},
	}
	got := EventLine(evt)
	for _, substr := range []string{"03:04:05.600", "chart_done", "run=r1", "item=ada", `{"type":"Generator"}`} {
		if !strings.Contains(got, substr) {
			t.Errorf("EventLine = %q, missing %q", got, substr)
		}
	}

	bare := EventLine(telemetry.Event{Kind: telemetry.KindBatchStart})
	if strings.Contains(bare, "run=") || strings.Contains(bare, "item=") {
		t.Errorf("EventLine(bare) = %q, want no ids", bare)
	}
}
