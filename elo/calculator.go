// Package elo computes expected scores and rating updates with the Elo formula.
//
// A Calculator holds a K-factor policy and optional rating bounds. Scoring
// methods only read that configuration, so they may be called concurrently;
// the setters are not synchronized and must not race with other calls.
package elo

import "math"

type Calculator struct {
	kFactor KFactorPolicy
	min     float64
	max     float64
}

type Option func(*Calculator)

// WithKFactor sets the K-factor policy. A nil policy keeps the default.
func WithKFactor(p KFactorPolicy) Option {
	return func(c *Calculator) {
		c.SetKFactor(p)
	}
}

func WithMin(min float64) Option {
	return func(c *Calculator) {
		c.min = min
	}
}

func WithMax(max float64) Option {
	return func(c *Calculator) {
		c.max = max
	}
}

// New returns an unbounded calculator with K = 32 unless options say otherwise.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		kFactor: Constant(DefaultKFactor),
		min:     math.Inf(-1),
		max:     math.Inf(1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KFactor returns the K coefficient for rating. It reports false when a table
// policy has neither a matching threshold nor a default.
func (c *Calculator) KFactor(rating float64) (float64, bool) {
	return c.kFactor.KFactor(rating)
}

// DefaultKFactorLookup is KFactor for an unspecified rating, which counts as 0.
func (c *Calculator) DefaultKFactorLookup() (float64, bool) {
	return c.KFactor(0)
}

// SetKFactor replaces the policy. nil resets it to the constant default.
func (c *Calculator) SetKFactor(p KFactorPolicy) *Calculator {
	if p == nil {
		p = Constant(DefaultKFactor)
	}
	c.kFactor = p
	return c
}

func (c *Calculator) Min() float64 {
	return c.min
}

func (c *Calculator) Max() float64 {
	return c.max
}

func (c *Calculator) SetMin(min float64) *Calculator {
	c.min = min
	return c
}

func (c *Calculator) SetMax(max float64) *Calculator {
	c.max = max
	return c
}

// ExpectedScore returns the probability in (0, 1) that rating beats opponentRating.
func (c *Calculator) ExpectedScore(rating, opponentRating float64) float64 {
	return Expected(rating, opponentRating)
}

// BothExpectedScores returns the expected scores of a against b and of b against a.
func (c *Calculator) BothExpectedScores(ratingA, ratingB float64) [2]float64 {
	return [2]float64{
		c.ExpectedScore(ratingA, ratingB),
		c.ExpectedScore(ratingB, ratingA),
	}
}

// NewRating applies one result to previousRating. K is looked up by the
// previous rating; an unmatched table lookup leaves the rating unchanged.
// The result is rounded half up and clamped to [Min, Max].
func (c *Calculator) NewRating(expectedScore, actualScore, previousRating float64) float64 {
	k, _ := c.KFactor(previousRating)
	rating := roundHalfUp(previousRating + k*(actualScore-expectedScore))
	if rating < c.min {
		return c.min
	}
	if rating > c.max {
		return c.max
	}
	return rating
}

// NewRatingFor is NewRating with the expected score derived from both ratings.
func (c *Calculator) NewRatingFor(rating, opponentRating float64, points Points) float64 {
	return c.NewRating(c.ExpectedScore(rating, opponentRating), float64(points), rating)
}

func (c *Calculator) NewRatingIfWon(rating, opponentRating float64) float64 {
	return c.NewRatingFor(rating, opponentRating, Win)
}

func (c *Calculator) NewRatingIfLost(rating, opponentRating float64) float64 {
	return c.NewRatingFor(rating, opponentRating, Lose)
}

func (c *Calculator) NewRatingIfTied(rating, opponentRating float64) float64 {
	return c.NewRatingFor(rating, opponentRating, Draw)
}
