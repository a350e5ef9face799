package alertmetrics

// Collector receives alert lifecycle events. Implementations must be safe for
// concurrent use and must not block.
type Collector interface {
	// AlertPublished counts a publish; kind is the alert type or "clear".
	AlertPublished(group, kind string)
	ViewMounted(group string)
	ViewTornDown(group string)
	// RelayError counts a failed relay operation such as "publish" or "decode".
	RelayError(op string)
}

// Nop discards every event.
type Nop struct{}

func (Nop) AlertPublished(string, string) {}
func (Nop) ViewMounted(string)            {}
func (Nop) ViewTornDown(string)           {}
func (Nop) RelayError(string)             {}
