package insight

// MetricBound is one condition on a catalog entry: an inclusive range over a
// named assessment metric. A nil Min or Max leaves that side open.
type MetricBound struct {
	Metric string `mapstructure:"metric" json:"metric"`
	Min    *int   `mapstructure:"min" json:"min,omitempty"`
	Max    *int   `mapstructure:"max" json:"max,omitempty"`
}

// Contains reports whether v satisfies the bound.
func (b MetricBound) Contains(v int) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

// RecoveryInsight is one catalog entry: an educational or exercise tip that
// surfaces when a patient's latest assessment falls inside all of its
// bounds. Entries are configuration, not database rows.
type RecoveryInsight struct {
	ID       string        `mapstructure:"id" json:"id"`
	Title    string        `mapstructure:"title" json:"title"`
	Body     string        `mapstructure:"body" json:"body"`
	Category string        `mapstructure:"category" json:"category,omitempty"`
	Points   int           `mapstructure:"points" json:"points"`
	Bounds   []MetricBound `mapstructure:"bounds" json:"bounds,omitempty"`
}
