package game

import (
	"errors"
	"testing"

	"github.com/lixenwraith/arena-fighter/input"
)

func TestHandleRoutesByState(t *testing.T) {
	s := newTestSession(t, "")

	if out, _ := s.Handle(input.Intent{Type: input.IntentQuit}); out != OutcomeQuit {
		t.Errorf("quit outcome = %v, want OutcomeQuit", out)
	}
	if out, _ := s.Handle(input.Intent{Type: input.IntentToggleDebug}); out != OutcomeToggleDebug {
		t.Errorf("debug outcome = %v, want OutcomeToggleDebug", out)
	}

	s.Handle(input.Intent{Type: input.IntentOpenShop})
	if s.State() != StateShop {
		t.Fatalf("State = %v, want Shop", s.State())
	}

	_, err := s.Handle(input.Intent{Type: input.IntentBuy, Index: 0})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("buy with no currency error = %v, want ErrInsufficientFunds", err)
	}
	_, err = s.Handle(input.Intent{Type: input.IntentBuy, Index: 9})
	if !errors.Is(err, ErrUnknownUpgrade) {
		t.Errorf("buy slot 10 error = %v, want ErrUnknownUpgrade", err)
	}

	s.Handle(input.Intent{Type: input.IntentBack})
	s.Handle(input.Intent{Type: input.IntentConfirm})
	if s.State() != StateGame {
		t.Fatalf("State = %v, want Game", s.State())
	}

	s.Handle(input.Intent{Type: input.IntentPause})
	if !s.Paused() {
		t.Error("pause intent did not pause")
	}
	// Confirm is meaningless mid-run
	if _, err := s.Handle(input.Intent{Type: input.IntentConfirm}); err != nil || s.State() != StateGame {
		t.Errorf("confirm in Game: state %v err %v, want ignored", s.State(), err)
	}
}
