package web

import (
	"errors"
	"math"
)

type errorResponse struct {
	Errors []string `json:"errors"`
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func newErrorResponse(err error) errorResponse {
	var resp errorResponse
	for _, err := range unwrap(err) {
		resp.Errors = append(resp.Errors, err.Error())
	}
	return resp
}

type kFactorResponse struct {
	Rating  float64  `json:"rating"`
	KFactor *float64 `json:"kFactor"`
}

type boundsResponse struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// finite maps infinite bounds to JSON null.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type expectedResponse struct {
	Expected [2]float64 `json:"expected"`
}

type ratingResponse struct {
	Rating float64 `json:"rating"`
}
