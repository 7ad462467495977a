package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUD formats status text with locale-aware digit grouping
type HUD struct {
	printer *message.Printer
}

func NewHUD() *HUD {
	return &HUD{printer: message.NewPrinter(language.English)}
}

// StatusLine is the single-row run summary
func (h *HUD) StatusLine(s Stats) string {
	return h.printer.Sprintf("Score %d  Boss %d  Coins %d  Time %.1fs", s.Score, s.BossPoints, s.Currency, s.Elapsed)
}

// DebugLine exposes pool usage and spawner credits
func (h *HUD) DebugLine(s Stats) string {
	return h.printer.Sprintf("Enemies %d/%d  Shots %d/%d  Credits %.1f",
		s.Enemies, s.EnemyCap, s.Projectiles, s.ProjCap, s.Credits)
}

// Sprintf formats arbitrary menu text with the same printer
func (h *HUD) Sprintf(format string, args ...any) string {
	return h.printer.Sprintf(format, args...)
}
