package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

// Banner крупная надпись по центру экрана с подсказкой под ней.
type Banner struct {
	Width, Height int
	Face          font.Face
	Color         color.RGBA
}

func NewBanner(width, height int, face font.Face) *Banner {
	return &Banner{Width: width, Height: height, Face: face, Color: config.TextColor}
}

// StatusText надпись для итога партии. Пустая строка, пока игра идёт.
func StatusText(status component.MatchStatus) string {
	switch status {
	case component.StatusWon:
		return "YOU WON"
	case component.StatusLost:
		return "GAME OVER"
	}
	return ""
}

// Origin базовая линия, при которой s оказывается по центру строки line.
func (b *Banner) Origin(s string, line int) image.Point {
	bounds := text.BoundString(b.Face, s)
	lineHeight := b.Face.Metrics().Height.Ceil() * 2
	x := (b.Width - bounds.Dx()) / 2
	y := b.Height/2 + line*lineHeight
	return image.Pt(x, y)
}

// Draw рисует заголовок и подсказку. Пустой заголовок ничего не рисует.
func (b *Banner) Draw(screen *ebiten.Image, title, hint string) {
	if title == "" {
		return
	}
	drawOutlined(screen, title, b.Face, b.Origin(title, 0), b.Color, config.BackgroundColor, 2)
	if hint != "" {
		text.Draw(screen, hint, b.Face, b.Origin(hint, 1).X, b.Origin(hint, 1).Y, b.Color)
	}
}
