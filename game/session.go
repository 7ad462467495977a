// Package game drives the session lifecycle around the simulation
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/system"
)

// ErrWrongState rejects an action not allowed in the current session state
var ErrWrongState = errors.New("action not allowed in current state")

// State is the orchestrator state
type State uint8

const (
	StateStart State = iota
	StateGame
	StateShop
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateGame:
		return "Game"
	case StateShop:
		return "Shop"
	case StateEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Session cycles START -> GAME -> END -> START, with SHOP reachable from START
// Currency persists in-process across sessions
type Session struct {
	world *engine.World
	shop  *Shop
	log   zerolog.Logger

	state    State
	paused   bool
	currency int
	runID    string
	runs     int

	// startedAt is game time when the current run began
	startedAt float64

	// Totals of the last finished run, kept for the END screen
	lastScore      int
	lastBossPoints int
	lastEarned     int
}

// New builds a world with the full gameplay pipeline and wraps it in a session
func New(cfg *config.Config, opts ...engine.Option) *Session {
	w := engine.NewWorld(cfg, opts...)
	system.RegisterAll(w)
	return NewSession(w)
}

// NewSession wraps a world whose systems are already registered
func NewSession(world *engine.World) *Session {
	return &Session{
		world: world,
		shop:  NewShop(world.Config),
		log:   world.Log,
		state: StateStart,
	}
}

func (s *Session) World() *engine.World { return s.world }
func (s *Session) Shop() *Shop          { return s.shop }
func (s *Session) State() State         { return s.state }
func (s *Session) Paused() bool         { return s.paused }
func (s *Session) Currency() int        { return s.currency }

// RunID identifies the current or most recent GAME session, empty before the first
func (s *Session) RunID() string { return s.runID }

// Runs counts GAME sessions started
func (s *Session) Runs() int { return s.runs }

// LastRun returns score, boss points and currency earned by the last finished run
func (s *Session) LastRun() (score, bossPoints, earned int) {
	return s.lastScore, s.lastBossPoints, s.lastEarned
}

// Start begins a GAME session, resetting transient state and keeping purchased stats
func (s *Session) Start() error {
	if s.state != StateStart {
		return fmt.Errorf("start from %s: %w", s.state, ErrWrongState)
	}

	s.runID = uuid.NewString()
	s.runs++
	s.world.Log = s.log.With().Str("run_id", s.runID).Logger()
	s.world.Reset()
	s.paused = false
	s.startedAt = s.world.Clock.Now()

	s.world.Log.Info().
		Float64("speed", s.world.Player.Speed).
		Float64("fire_rate", s.world.Player.FireRate).
		Int("currency", s.currency).
		Msg("session started")
	s.transition(StateGame)
	return nil
}

// OpenShop moves from the menu into the shop
func (s *Session) OpenShop() error {
	if s.state != StateStart {
		return fmt.Errorf("open shop from %s: %w", s.state, ErrWrongState)
	}
	s.transition(StateShop)
	return nil
}

// CloseShop returns to the menu
func (s *Session) CloseShop() error {
	if s.state != StateShop {
		return fmt.Errorf("close shop from %s: %w", s.state, ErrWrongState)
	}
	s.transition(StateStart)
	return nil
}

// Buy purchases one level of stat with shop currency
func (s *Session) Buy(stat component.StatID) error {
	if s.state != StateShop {
		return fmt.Errorf("buy from %s: %w", s.state, ErrWrongState)
	}

	player := s.world.Player
	paid, err := s.shop.Purchase(stat, &s.currency, &player.PlayerStats)
	if err != nil {
		return err
	}

	u, _ := s.shop.Upgrade(stat)
	value := player.Stat(stat)
	s.log.Info().
		Str("stat", stat.String()).
		Int("paid", paid).
		Int("next_cost", u.Cost).
		Float64("value", value).
		Msg("upgrade purchased")
	s.world.Emit(event.EventUpgradePurchased, &event.UpgradePayload{
		Stat:     stat.String(),
		Paid:     paid,
		NextCost: u.Cost,
		Value:    value,
	})
	return nil
}

// ReturnToMenu leaves the END screen, folding the run's score and boss points into currency
func (s *Session) ReturnToMenu() error {
	if s.state != StateEnd {
		return fmt.Errorf("return to menu from %s: %w", s.state, ErrWrongState)
	}

	earned := s.Earnings()
	s.currency += earned
	s.lastEarned = earned

	s.world.Log.Info().Int("earned", earned).Int("currency", s.currency).Msg("currency folded")
	s.transition(StateStart)
	return nil
}

// Earnings is what the current run is worth at the END -> START fold
func (s *Session) Earnings() int {
	p := s.world.Player
	shop := s.world.Config.Shop
	return p.Score*shop.ScoreValue + p.BossPoints*shop.BossPointValue
}

// TogglePause freezes or resumes GAME updates; returns the new paused state
func (s *Session) TogglePause() bool {
	if s.state != StateGame {
		return s.paused
	}
	s.paused = !s.paused
	s.world.Log.Debug().Bool("paused", s.paused).Msg("pause toggled")
	return s.paused
}

// Update runs one frame of the simulation while in GAME and not paused
// Player defeat ends the session unless the player is invincible
func (s *Session) Update(dt float64, in engine.Input) {
	if s.state != StateGame || s.paused {
		return
	}

	s.world.Step(dt, in)

	p := s.world.Player
	if !p.Defeated {
		return
	}
	if p.Invincible {
		p.Defeated = false
		return
	}

	s.lastScore = p.Score
	s.lastBossPoints = p.BossPoints
	s.world.Log.Info().
		Int("score", p.Score).
		Int("boss_points", p.BossPoints).
		Float64("survived", s.world.Time.GameTime-s.startedAt).
		Msg("session ended")
	s.transition(StateEnd)
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	s.world.Emit(event.EventSessionStateChanged, &event.SessionStatePayload{
		From:  from.String(),
		To:    to.String(),
		RunID: s.runID,
	})
}
