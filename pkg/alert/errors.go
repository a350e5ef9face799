package alert

import "errors"

var ErrUnknownType = errors.New("alert: unknown alert type")
