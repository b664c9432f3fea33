package repository

import "errors"

// Sentinel errors returned by the in-memory stores. Services translate these
// into typed API errors at the boundary.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrUnknownClassroom = errors.New("unknown classroom")
	ErrSlotOutOfRange   = errors.New("slot out of range")
	ErrSlotTaken        = errors.New("teacher already occupied at slot")
)
