package alertmetrics

import "errors"

var (
	ErrNilRegisterer = errors.New("alertmetrics: nil prometheus registerer")
	ErrRegister      = errors.New("alertmetrics: failed to register collector")
)
