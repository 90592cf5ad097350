package store

import "errors"

// Sentinel errors returned by store mutations. Read operations report missing
// or unauthorized targets as nil results instead, so callers cannot probe for
// existence of other users' rows.
var (
	// ErrUnauthorized covers both "does not exist" and "not owned by the
	// caller"; the two are deliberately indistinguishable.
	ErrUnauthorized = errors.New("not found or unauthorized")

	// ErrRunNotFound is ErrUnauthorized for operations that reference a run.
	ErrRunNotFound = errors.New("run not found or unauthorized")

	// ErrPartyFull is returned when adding to a party that already has six
	// members and no explicit slot was given.
	ErrPartyFull = errors.New("party is full (max 6 pokemon)")

	// ErrInvalidPosition is returned for a party slot outside 0-5, or when
	// auto-assignment finds no free slot.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrPositionOccupied is returned when the target party slot is already
	// held by another member of the same run.
	ErrPositionOccupied = errors.New("position is already occupied")

	// ErrCrossRunMismatch is returned when reordering two party members that
	// belong to different runs.
	ErrCrossRunMismatch = errors.New("pokemon must be in the same run")
)
