package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Background is the arena floor
	Background = colorful.Color{R: 0.102, G: 0.106, B: 0.149}

	// HUDText is the default status line colour
	HUDText = colorful.Color{R: 0.753, G: 0.792, B: 0.961}

	// damaged is what the boss fades toward as health drops
	damaged = colorful.Color{R: 0.235, G: 0.235, B: 0.235}
)

// BossColor blends the boss colour toward grey in Lab space as health drops
func BossColor(base colorful.Color, health float64) colorful.Color {
	if health < 0 {
		health = 0
	}
	if health > 1 {
		health = 1
	}
	return damaged.BlendLab(base, health).Clamped()
}

// TcellColor converts to a 24-bit terminal colour
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
