package game

import (
	"fmt"

	"github.com/lixenwraith/arena-fighter/input"
)

// Outcome tells the front-end what to do after a command
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomeToggleDebug
)

// Handle applies a menu or session command for the current state
// Commands with no meaning in the current state are ignored
func (s *Session) Handle(in input.Intent) (Outcome, error) {
	switch in.Type {
	case input.IntentQuit:
		return OutcomeQuit, nil
	case input.IntentToggleDebug:
		return OutcomeToggleDebug, nil
	}

	switch s.state {
	case StateStart:
		switch in.Type {
		case input.IntentConfirm:
			return OutcomeNone, s.Start()
		case input.IntentOpenShop:
			return OutcomeNone, s.OpenShop()
		}
	case StateShop:
		switch in.Type {
		case input.IntentBack, input.IntentOpenShop:
			return OutcomeNone, s.CloseShop()
		case input.IntentBuy:
			upgrades := s.shop.Upgrades()
			if in.Index < 0 || in.Index >= len(upgrades) {
				return OutcomeNone, fmt.Errorf("%w: slot %d", ErrUnknownUpgrade, in.Index+1)
			}
			return OutcomeNone, s.Buy(upgrades[in.Index].Stat)
		}
	case StateGame:
		if in.Type == input.IntentPause {
			s.TogglePause()
		}
	case StateEnd:
		if in.Type == input.IntentConfirm {
			return OutcomeNone, s.ReturnToMenu()
		}
	}
	return OutcomeNone, nil
}
