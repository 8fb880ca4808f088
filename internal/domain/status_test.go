package domain

import (
	"reflect"
	"testing"
)

const turkey = "GCMT_event_TURKEY_Mag_5.1_2010-3-24-14-11"

func TestBuildStatusReport_MissingData(t *testing.T) {
	r := BuildStatusReport("1", []EventCounts{
		{Event: turkey, Total: 4, Processed: 0, Synthetics: 2, WindowFraction: 0},
	})

	// The header is pluralized by count, unlike the "1 events:" of older releases.
	want := []string{
		"Iteration 1 is defined for 1 event:",
		turkey,
		"0.00 % of the events stations have picked windows",
		"Lacks processed data for 4 stations",
		"Lacks synthetic data for 2 stations",
	}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected report:\n got=%q\nwant=%q", got, want)
	}
}

func TestBuildStatusReport_OmitsCompleteCategories(t *testing.T) {
	r := BuildStatusReport("1", []EventCounts{
		{Event: turkey, Total: 4, Processed: 4, Synthetics: 2},
	})

	want := []string{
		"Iteration 1 is defined for 1 event:",
		turkey,
		"0.00 % of the events stations have picked windows",
		"Lacks synthetic data for 2 stations",
	}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected report:\n got=%q\nwant=%q", got, want)
	}
}

func TestBuildStatusReport_FullyProcessedEventHasTwoLines(t *testing.T) {
	r := BuildStatusReport("7", []EventCounts{
		{Event: "A", Total: 3, Processed: 3, Synthetics: 3, WindowFraction: 1},
		{Event: "B", Total: 4, Processed: 4, Synthetics: 0, WindowFraction: 0.125},
	})

	want := []string{
		"Iteration 7 is defined for 2 events:",
		"A",
		"100.00 % of the events stations have picked windows",
		"B",
		"12.50 % of the events stations have picked windows",
		"Lacks synthetic data for 4 stations",
	}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected report:\n got=%q\nwant=%q", got, want)
	}
	if len(r.Events) != 2 || len(r.Events[0].Lines) != 1 {
		t.Fatalf("expected a single detail line for the complete event, got %+v", r.Events)
	}
}

func TestBuildStatusReport_NoEvents(t *testing.T) {
	r := BuildStatusReport("0", nil)
	want := []string{"Iteration 0 is defined for 0 events:"}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}
