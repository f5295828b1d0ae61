package service

import (
	"github.com/goserg/ratingcalc/elo"
	"github.com/goserg/ratingcalc/internal/domain"

	"github.com/sirupsen/logrus"
)

type MatchService struct {
	calc *elo.Calculator
	log  *logrus.Logger
}

func New(calc *elo.Calculator, log *logrus.Logger) *MatchService {
	return &MatchService{
		calc: calc,
		log:  log,
	}
}

func (s *MatchService) Calculator() *elo.Calculator {
	return s.calc
}

func (s *MatchService) KFactor(rating float64) (float64, bool) {
	return s.calc.KFactor(rating)
}

func (s *MatchService) Expected(ratingA, ratingB float64) (float64, float64) {
	both := s.calc.BothExpectedScores(ratingA, ratingB)
	return both[0], both[1]
}

func (s *MatchService) NewRating(expected, actual, previous float64) float64 {
	return s.calc.NewRating(expected, actual, previous)
}

// Evaluate rates both sides of a match. Each player's K is looked up by their own rating.
func (s *MatchService) Evaluate(m domain.Match) domain.MatchResult {
	expectedA, expectedB := s.Expected(m.PlayerA.Rating, m.PlayerB.Rating)
	pointsA, pointsB := m.Outcome, m.Outcome.Opposite()
	res := domain.MatchResult{
		PlayerA: s.playerResult(m.PlayerA, expectedA, pointsA),
		PlayerB: s.playerResult(m.PlayerB, expectedB, pointsB),
	}
	s.log.WithFields(logrus.Fields{
		"playerA": m.PlayerA.Name,
		"playerB": m.PlayerB.Name,
		"outcome": m.Outcome.String(),
		"changeA": res.PlayerA.RatingChange,
		"changeB": res.PlayerB.RatingChange,
	}).Debug("match evaluated")
	return res
}

func (s *MatchService) playerResult(p domain.Player, expected float64, points elo.Points) domain.PlayerResult {
	if _, ok := s.calc.KFactor(p.Rating); !ok {
		s.log.WithField("rating", p.Rating).Warn("no k-factor for rating, rating unchanged")
	}
	newRating := s.calc.NewRating(expected, float64(points), p.Rating)
	return domain.PlayerResult{
		Player:       p,
		Expected:     expected,
		Points:       float64(points),
		NewRating:    newRating,
		RatingChange: newRating - p.Rating,
	}
}
