package alertrelay

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/alertkit/pkg/alert"
)

// Envelope is the wire form of a relayed record.
type Envelope struct {
	Origin string       `json:"origin"`
	Record alert.Record `json:"record"`
}

// Encode marshals an envelope.
func Encode(origin string, rec alert.Record) ([]byte, error) {
	rec.Origin = origin
	data, err := json.Marshal(Envelope{Origin: origin, Record: rec})
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return data, nil
}

// Decode unmarshals an envelope. The record's origin is taken from the
// envelope.
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	env.Record.Origin = env.Origin
	return env, nil
}
