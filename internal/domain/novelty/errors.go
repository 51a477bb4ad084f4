package novelty

import "errors"

var (
	ErrObservationNotFound = errors.New("observation not found")
	ErrUnknownCategory     = errors.New("unknown novedad category")
)
