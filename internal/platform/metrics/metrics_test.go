package metrics

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorsAreRegistered(t *testing.T) {
	LedgerWritesTotal.WithLabelValues(OpAttempt)
	PlayerCreateFailuresTotal.WithLabelValues(ReasonCatalog)
	families, err := Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := map[string]bool{}
	for _, family := range families {
		names[family.GetName()] = true
	}
	for _, want := range []string{
		"hypersomnia_players_created_total",
		"hypersomnia_player_create_failures_total",
		"hypersomnia_ledger_writes_total",
		"hypersomnia_levels_seeded_total",
	} {
		if !names[want] {
			t.Fatalf("collector %s not registered", want)
		}
	}
}

func TestLedgerCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(LedgerWritesTotal.WithLabelValues(OpUnlock))
	LedgerWritesTotal.WithLabelValues(OpUnlock).Inc()
	if got := testutil.ToFloat64(LedgerWritesTotal.WithLabelValues(OpUnlock)); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestWriteTextDumpsRegistry(t *testing.T) {
	before := testutil.ToFloat64(LevelsSeededTotal)
	LevelsSeededTotal.Add(2)

	var buf bytes.Buffer
	if err := WriteText(&buf); err != nil {
		t.Fatalf("write text: %v", err)
	}
	out := buf.String()
	want := fmt.Sprintf("hypersomnia_levels_seeded_total %g\n", before+2)
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
	if !strings.Contains(out, "# TYPE hypersomnia_tx_duration_seconds histogram") {
		t.Fatalf("histogram family missing:\n%s", out)
	}
}
