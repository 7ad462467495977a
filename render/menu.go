package render

import (
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/game"
)

// MenuLines returns the text screen for non-GAME states, nil during a run
func (h *HUD) MenuLines(s *game.Session) []string {
	switch s.State() {
	case game.StateStart:
		lines := []string{
			"ARENA FIGHTER",
			"",
			h.Sprintf("Coins: %d", s.Currency()),
			"",
			"Enter  start",
			"E      shop",
			"Q      quit",
		}
		if s.Runs() > 0 {
			_, _, earned := s.LastRun()
			lines = append(lines, "", h.Sprintf("Last run earned %d coins", earned))
		}
		return lines

	case game.StateShop:
		p := s.World().Player
		lines := []string{
			"SHOP",
			"",
			h.Sprintf("Coins: %d", s.Currency()),
			"",
		}
		for i, u := range s.Shop().Upgrades() {
			lines = append(lines, h.Sprintf("%d  %-17s %8.2f  +%.2f  cost %d",
				i+1, u.Stat.String(), p.Stat(u.Stat), u.Step(), u.Cost))
		}
		return append(lines, "", "Esc  back")

	case game.StateEnd:
		p := s.World().Player
		return []string{
			"DEFEATED",
			"",
			h.Sprintf("Score:       %d", p.Score),
			h.Sprintf("Boss points: %d", p.BossPoints),
			h.Sprintf("Earned:      %d coins", s.Earnings()),
			"",
			"Enter  continue",
		}
	}
	return nil
}

// EventMessage turns a gameplay event into a transient status message
// Events not worth announcing return ""
func (h *HUD) EventMessage(ev event.GameEvent) string {
	switch ev.Type {
	case event.EventBossSpawned:
		return "The boss has arrived"
	case event.EventBossDefeated:
		if p, ok := ev.Payload.(*event.BossPayload); ok {
			return h.Sprintf("Boss defeated, next at score %d", p.NextSpawnScore)
		}
	case event.EventUpgradePurchased:
		if p, ok := ev.Payload.(*event.UpgradePayload); ok {
			return h.Sprintf("%s upgraded to %.2f for %d coins", p.Stat, p.Value, p.Paid)
		}
	case event.EventWaveSpawned:
		if p, ok := ev.Payload.(*event.WaveSpawnedPayload); ok && p.Size >= 10 {
			return h.Sprintf("Large wave: %d enemies", p.Size)
		}
	}
	return ""
}
