package alertview

import "errors"

var (
	ErrTornDown = errors.New("alertview: view already torn down")
	ErrNilBus   = errors.New("alertview: nil alert bus")
)
