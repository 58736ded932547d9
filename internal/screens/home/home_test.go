package home

import "testing"

func TestRenderCountsLine(t *testing.T) {
	got := renderCountsLine(map[int]int{2: 25, 1: 40})
	want := "1. maila: 40 hitz   2. maila: 25 hitz"
	if got != want {
		t.Errorf("renderCountsLine = %q, want %q", got, want)
	}
}

func TestRenderCountsLineEmpty(t *testing.T) {
	if got := renderCountsLine(nil); got != "" {
		t.Errorf("renderCountsLine(nil) = %q, want empty", got)
	}
}
