package web

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/goserg/ratingcalc/elo"
	"github.com/goserg/ratingcalc/internal/domain"
)

var (
	ErrMissingPlayer  = errors.New("both players must be present")
	ErrUnknownOutcome = errors.New("outcome must be one of win, draw, lose")
	ErrNotANumber     = errors.New("value must be a finite number")
)

var outcomes = map[string]elo.Points{
	"win":  elo.Win,
	"draw": elo.Draw,
	"lose": elo.Lose,
}

func validateNumber(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %w", field, ErrNotANumber)
	}
	return nil
}

type expectedRequest struct {
	Rating         float64 `json:"rating"`
	OpponentRating float64 `json:"opponentRating"`
}

func (r expectedRequest) Validate() error {
	return errors.Join(
		validateNumber("rating", r.Rating),
		validateNumber("opponentRating", r.OpponentRating),
	)
}

type ratingRequest struct {
	ExpectedScore  float64 `json:"expectedScore"`
	ActualScore    float64 `json:"actualScore"`
	PreviousRating float64 `json:"previousRating"`
}

func (r ratingRequest) Validate() error {
	return errors.Join(
		validateNumber("expectedScore", r.ExpectedScore),
		validateNumber("actualScore", r.ActualScore),
		validateNumber("previousRating", r.PreviousRating),
	)
}

type playerDTO struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

type matchRequest struct {
	PlayerA *playerDTO `json:"playerA"`
	PlayerB *playerDTO `json:"playerB"`
	Outcome string     `json:"outcome"`
}

func (m matchRequest) Validate() error {
	if m.PlayerA == nil || m.PlayerB == nil {
		return ErrMissingPlayer
	}
	var err error
	if _, ok := outcomes[strings.ToLower(m.Outcome)]; !ok {
		err = ErrUnknownOutcome
	}
	return errors.Join(err,
		validateNumber("playerA.rating", m.PlayerA.Rating),
		validateNumber("playerB.rating", m.PlayerB.Rating),
	)
}

func (m matchRequest) convertToDomainMatch() domain.Match {
	return domain.Match{
		PlayerA: domain.Player{Name: m.PlayerA.Name, Rating: m.PlayerA.Rating},
		PlayerB: domain.Player{Name: m.PlayerB.Name, Rating: m.PlayerB.Rating},
		Outcome: outcomes[strings.ToLower(m.Outcome)],
	}
}
