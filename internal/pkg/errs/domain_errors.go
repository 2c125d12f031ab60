package errs

import "errors"

// Outcome categories shared by the usecase and handler layers.
// Usecase errors are marked with one of these so handlers can pick a status without string matching.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("slot conflict")
	ErrExpiredState = errors.New("expired state")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("upstream failure")
	ErrPersistence  = errors.New("persistence failure")
	ErrRateLimited  = errors.New("rate limited")
)

// Kind is the wire name of an outcome category.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindExpiredState Kind = "expired_state"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindUpstream     Kind = "upstream"
	KindPersistence  Kind = "persistence"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

var kindOrder = []struct {
	sentinel error
	kind     Kind
}{
	{ErrValidation, KindValidation},
	{ErrConflict, KindConflict},
	{ErrExpiredState, KindExpiredState},
	{ErrForbidden, KindForbidden},
	{ErrNotFound, KindNotFound},
	{ErrRateLimited, KindRateLimited},
	{ErrUpstream, KindUpstream},
	{ErrPersistence, KindPersistence},
}

func KindOf(err error) Kind {
	for _, k := range kindOrder {
		if Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}
