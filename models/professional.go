package models

import (
	"strconv"
	"strings"
)

// Professional is a directory record. Records are never mutated in place;
// the directory only inserts and removes whole records.
type Professional struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Rating      float64  `json:"rating"`  // 0-5
	Reviews     int      `json:"reviews"` // non-negative
	HourlyRate  float64  `json:"hourlyRate"`
	Distance    string   `json:"distance"` // display text, e.g. "2.5 km"
	ImageURL    string   `json:"imageUrl"`
	Available   bool     `json:"available"`
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email"`
}

// DistanceKM parses the numeric part of the distance display text for
// sorting. Unparseable distances sort last.
func (p Professional) DistanceKM() float64 {
	fields := strings.Fields(strings.TrimSpace(p.Distance))
	if len(fields) == 0 {
		return maxDistance
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil {
		return maxDistance
	}
	return v
}

const maxDistance = 1 << 30

// RegistrationData is the professional sign-up payload. Required-field
// validation happens at binding time; semantic checks (known category,
// non-negative rate) happen in the registration service.
type RegistrationData struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	PhoneNumber   string  `json:"phoneNumber" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	HourlyRate    float64 `json:"hourlyRate"`
	Experience    string  `json:"experience,omitempty"`   // e.g. "Pleno (3-5 anos)"
	Availability  string  `json:"availability,omitempty"` // e.g. "Tempo Integral (Comercial)"
	BaseLocation  string  `json:"baseLocation,omitempty"`
	ServiceRadius float64 `json:"serviceRadiusKm,omitempty"`
	Bio           string  `json:"bio,omitempty"`
}

// DeletionStep tracks the account-deletion flow.
type DeletionStep string

const (
	DeletionStepSearch  DeletionStep = "SEARCH"
	DeletionStepConfirm DeletionStep = "CONFIRM"
	DeletionStepSuccess DeletionStep = "SUCCESS"
)

// DeletionSession is the transient state of one account-deletion flow.
type DeletionSession struct {
	ID      string       `json:"id"`
	Email   string       `json:"email"`
	Step    DeletionStep `json:"step"`
	Removed int          `json:"removed"`
}
