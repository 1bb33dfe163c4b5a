//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudGlyphWidth = 7
)

// HUD renders the parameter panel in the top-left corner of the view.
type HUD struct {
	source  ParameterProvider
	visible bool
	lines   []string
	panel   *ebiten.Image
}

// NewHUD constructs a HUD reading from source.
func NewHUD(source ParameterProvider, visible bool) *HUD {
	return &HUD{source: source, visible: visible}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update refreshes the cached lines from the simulation.
func (h *HUD) Update() {
	if !h.visible {
		return
	}
	h.lines = Lines(h.source.Parameters(), ebiten.ActualFPS())
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible || len(h.lines) == 0 {
		return
	}
	w := longest(h.lines)*hudGlyphWidth + 2*hudPadding
	ht := len(h.lines)*hudLineHeight + 2*hudPadding
	if h.panel == nil || h.panel.Bounds().Dx() != w || h.panel.Bounds().Dy() != ht {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(w, ht)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(h.panel, strings.Join(h.lines, "\n"), basicfont.Face7x13, hudPadding, hudPadding+hudLineHeight-3, color.White)
	screen.DrawImage(h.panel, nil)
}
