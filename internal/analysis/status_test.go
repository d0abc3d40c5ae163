package analysis

import (
	"reflect"
	"testing"
	"time"

	"awdash/internal/models"
)

func TestStatusCounts(t *testing.T) {
	rep := sampleReport()
	got := StatusCounts(rep)

	want := map[string]int{"RECEIVED": 2, "WORKING": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StatusCounts() = %v, want %v", got, want)
	}
}

func TestStatusCountsSumToRowCount(t *testing.T) {
	rep := sampleReport()
	counts := StatusCounts(rep)

	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != rep.Len() {
		t.Errorf("counts sum to %d, want %d", sum, rep.Len())
	}
}

func TestStatusCountsEmptyReport(t *testing.T) {
	counts := StatusCounts(&models.Report{})
	if len(counts) != 0 {
		t.Errorf("expected no buckets, got %v", counts)
	}
}

func TestAnalyze(t *testing.T) {
	rep := sampleReport()
	now := date(2024, time.March, 1)

	a := Analyze(rep, DefaultReceivedRule(), ModeLatest, now)

	if a.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3", a.RowCount)
	}
	if a.Source != "sample.csv" {
		t.Errorf("Source = %q, want sample.csv", a.Source)
	}
	if len(a.Reception) != 2 {
		t.Errorf("Reception has %d months, want 2", len(a.Reception))
	}
	if a.CurrentMonth.Percent() != 100.0 {
		t.Errorf("gauge = %v, want 100.0", a.CurrentMonth.Percent())
	}
	if a.StatusCounts["RECEIVED"] != 2 || a.StatusCounts["WORKING"] != 1 {
		t.Errorf("StatusCounts = %v", a.StatusCounts)
	}

	// Determinism across full analyses.
	b := Analyze(rep, DefaultReceivedRule(), ModeLatest, now)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated analysis differs")
	}
}
