// Package ui draws the status panel over the simulation view.
package ui

import (
	"fmt"

	"gpu-life/internal/core"
)

// ParameterProvider exposes the values shown on the panel.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Lines lays a snapshot out as panel text, one group header followed by its
// parameters, with the measured frame rate appended.
func Lines(snap core.ParameterSnapshot, fps float64) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-11s %s", p.Label, p.Value))
		}
	}
	lines = append(lines, fmt.Sprintf("  %-11s %.1f", "Actual FPS", fps))
	return lines
}

// longest returns the length of the longest line.
func longest(lines []string) int {
	n := 0
	for _, l := range lines {
		n = max(n, len(l))
	}
	return n
}
