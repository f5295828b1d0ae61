package domain

import "github.com/goserg/ratingcalc/elo"

type Player struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Match is a single game between two players. Outcome is scored from PlayerA's side.
type Match struct {
	PlayerA Player
	PlayerB Player
	Outcome elo.Points
}

type PlayerResult struct {
	Player       Player  `json:"player"`
	Expected     float64 `json:"expected"`
	Points       float64 `json:"points"`
	NewRating    float64 `json:"newRating"`
	RatingChange float64 `json:"ratingChange"`
}

type MatchResult struct {
	PlayerA PlayerResult `json:"playerA"`
	PlayerB PlayerResult `json:"playerB"`
}
