package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/config"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
)

// Upgrade raises one permanent stat by a fraction of its base value
// Cost grows geometrically after each purchase and never decreases
type Upgrade struct {
	Stat      component.StatID
	Cost      int
	Increment float64 // Fraction of Base added per purchase
	Base      float64
	Bought    int
}

// Step is the absolute amount one purchase adds
func (u *Upgrade) Step() float64 {
	return u.Base * u.Increment
}

// Shop holds the upgrade table for the lifetime of the program
type Shop struct {
	upgrades   []Upgrade
	costFactor float64
}

// NewShop builds upgrades from config; base values come from the unmodified player stats
func NewShop(cfg *config.Config) *Shop {
	base := cfg.PlayerStats()
	s := &Shop{costFactor: cfg.Shop.CostFactor}
	for _, u := range cfg.Upgrades() {
		s.upgrades = append(s.upgrades, Upgrade{
			Stat:      u.Stat,
			Cost:      u.Cost,
			Increment: u.Increment,
			Base:      base.Stat(u.Stat),
		})
	}
	return s
}

// Upgrades returns the table in config order
func (s *Shop) Upgrades() []Upgrade {
	result := make([]Upgrade, len(s.upgrades))
	copy(result, s.upgrades)
	return result
}

// Upgrade returns the entry for stat
func (s *Shop) Upgrade(stat component.StatID) (*Upgrade, error) {
	for i := range s.upgrades {
		if s.upgrades[i].Stat == stat {
			return &s.upgrades[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownUpgrade, stat)
}

// Purchase deducts the cost from currency, applies the increment to stats and raises the cost
// Returns the price paid
func (s *Shop) Purchase(stat component.StatID, currency *int, stats *component.PlayerStats) (int, error) {
	u, err := s.Upgrade(stat)
	if err != nil {
		return 0, err
	}
	if *currency < u.Cost {
		return 0, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, stat, u.Cost, *currency)
	}

	paid := u.Cost
	*currency -= paid
	stats.SetStat(stat, stats.Stat(stat)+u.Step())
	u.Bought++
	u.Cost = int(math.Ceil(float64(u.Cost) * s.costFactor))
	return paid, nil
}
