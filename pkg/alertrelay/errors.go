package alertrelay

import "errors"

var (
	ErrNilBus           = errors.New("alertrelay: nil bus")
	ErrNilTransport     = errors.New("alertrelay: nil transport")
	ErrAlreadyStarted   = errors.New("alertrelay: relay already started")
	ErrClosed           = errors.New("alertrelay: relay closed")
	ErrUnknownDriver    = errors.New("alertrelay: unknown relay driver")
	ErrSubscribeFailed  = errors.New("alertrelay: transport subscribe failed")
	ErrNATSDisconnected = errors.New("alertrelay: nats connection is not connected")
)
