package event

import "errors"

var (
	ErrHandlerPanic = errors.New("event handler panicked")
	ErrPayloadType  = errors.New("unexpected payload type")
)
