// internal/ui/rlui/button.go
package rlui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button — кнопка-переключатель для raylib-хоста.
type Button struct {
	Rect        rl.Rectangle
	Label       string
	TextColor   rl.Color
	BgColor     rl.Color
	HoverColor  rl.Color
	ActiveColor rl.Color
	FontSize    int32
}

func NewButton(rect rl.Rectangle, label string) *Button {
	return &Button{
		Rect:        rect,
		Label:       label,
		TextColor:   rl.RayWhite,
		BgColor:     rl.NewColor(30, 34, 56, 220),
		HoverColor:  rl.NewColor(50, 56, 90, 230),
		ActiveColor: rl.NewColor(70, 200, 140, 255),
		FontSize:    16,
	}
}

// Contains reports whether p lies inside the button, edges included.
func (b *Button) Contains(p rl.Vector2) bool {
	return p.X >= b.Rect.X && p.X <= b.Rect.X+b.Rect.Width &&
		p.Y >= b.Rect.Y && p.Y <= b.Rect.Y+b.Rect.Height
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Contains(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку; active подсвечивает рамку.
func (b *Button) Draw(mousePos rl.Vector2, active bool) {
	bgColor := b.BgColor
	if b.Contains(mousePos) {
		bgColor = b.HoverColor
	}
	border := rl.DarkGray
	if active {
		border = b.ActiveColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, border)

	w := rl.MeasureText(b.Label, b.FontSize)
	x := int32(b.Rect.X) + (int32(b.Rect.Width)-w)/2
	y := int32(b.Rect.Y) + (int32(b.Rect.Height)-b.FontSize)/2
	rl.DrawText(b.Label, x, y, b.FontSize, b.TextColor)
}
