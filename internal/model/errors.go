package model

import "errors"

var (
	// ErrInvalidHorizon is returned for a horizon outside the supported set.
	ErrInvalidHorizon = errors.New("invalid horizon")
	// ErrInvalidPrice is returned for a non-positive or non-finite price.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrEmptyHistory is returned when a series is too short for the request.
	ErrEmptyHistory = errors.New("empty history")
	// ErrInvalidNews is returned when news titles fail validation.
	ErrInvalidNews = errors.New("invalid news titles")
)

// Horizons lists the forecast lengths the dashboard offers, in days.
var Horizons = []int{1, 2, 3, 5, 10}

// ValidHorizon reports whether h is one of Horizons.
func ValidHorizon(h int) bool {
	for _, v := range Horizons {
		if v == h {
			return true
		}
	}
	return false
}
