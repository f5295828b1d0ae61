package elo

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultKFactor is used when a calculator is built without a policy.
const DefaultKFactor = 32

// DefaultKey is the table key for ratings below the lowest threshold.
const DefaultKey = "default"

var (
	ErrInvalidThreshold   = errors.New("k-factor threshold is not a number")
	ErrDuplicateThreshold = errors.New("duplicate k-factor threshold")
)

// KFactorPolicy selects the K coefficient for a rating.
// The second result is false when the policy has no value for the rating.
type KFactorPolicy interface {
	KFactor(rating float64) (float64, bool)
}

// Constant applies the same K to every rating.
type Constant float64

func (c Constant) KFactor(float64) (float64, bool) {
	return float64(c), true
}

type step struct {
	threshold float64
	k         float64
}

// Table maps rating thresholds to K values. A rating gets the value of the
// greatest threshold not above it, or the default value if there is none.
type Table struct {
	steps      []step // ascending by threshold
	def        float64
	hasDefault bool
}

// NewTable builds a table without a default value. NaN thresholds are dropped.
func NewTable(thresholds map[float64]float64) *Table {
	t := &Table{steps: make([]step, 0, len(thresholds))}
	for threshold, k := range thresholds {
		if math.IsNaN(threshold) {
			continue
		}
		t.steps = append(t.steps, step{threshold: threshold, k: k})
	}
	sort.Slice(t.steps, func(i, j int) bool {
		return t.steps[i].threshold < t.steps[j].threshold
	})
	return t
}

// WithDefault sets the value for ratings below every threshold.
func (t *Table) WithDefault(k float64) *Table {
	t.def = k
	t.hasDefault = true
	return t
}

// ParseTable builds a table from numeric string keys and an optional "default" key.
func ParseTable(entries map[string]float64) (*Table, error) {
	thresholds := make(map[float64]float64, len(entries))
	seen := mapset.NewThreadUnsafeSet[float64]()
	var errs error
	for key, k := range entries {
		if key == DefaultKey {
			continue
		}
		threshold, err := strconv.ParseFloat(key, 64)
		if err != nil || math.IsNaN(threshold) {
			errs = errors.Join(errs, fmt.Errorf("%w: %q", ErrInvalidThreshold, key))
			continue
		}
		if !seen.Add(threshold) {
			errs = errors.Join(errs, fmt.Errorf("%w: %q", ErrDuplicateThreshold, key))
			continue
		}
		thresholds[threshold] = k
	}
	if errs != nil {
		return nil, errs
	}
	t := NewTable(thresholds)
	if k, ok := entries[DefaultKey]; ok {
		t.WithDefault(k)
	}
	return t, nil
}

func (t *Table) KFactor(rating float64) (float64, bool) {
	// first threshold strictly above rating
	i := sort.Search(len(t.steps), func(i int) bool {
		return t.steps[i].threshold > rating
	})
	if i > 0 {
		return t.steps[i-1].k, true
	}
	if t.hasDefault {
		return t.def, true
	}
	return 0, false
}
