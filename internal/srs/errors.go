package srs

import "errors"

var (
	// ErrCardNotFound is returned when a card id does not resolve in the CardStore.
	ErrCardNotFound = errors.New("card not found")
	// ErrCollectionNotFound is returned when a collection id does not resolve.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrInvalidGrade marks a grade the requested operation cannot handle,
	// such as Again reaching the review interval formula.
	ErrInvalidGrade = errors.New("invalid grade")
	// ErrInvalidQueue is returned when a card is not in a queue the operation accepts.
	ErrInvalidQueue = errors.New("invalid queue")
)
