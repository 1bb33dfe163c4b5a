package ui

import (
	"slices"
	"testing"

	"gpu-life/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{{Key: "size", Label: "Size", Value: "8x8"}}},
		{Name: "Loop", Params: []core.Parameter{{Key: "generation", Label: "Generation", Value: "12"}}},
	}}
	got := Lines(snap, 59.94)
	want := []string{
		"Grid",
		"  Size        8x8",
		"Loop",
		"  Generation  12",
		"  Actual FPS  59.9",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines =\n%q\nwant\n%q", got, want)
	}
	if n := longest(got); n != len("  Actual FPS  59.9") {
		t.Fatalf("longest = %d", n)
	}
}
