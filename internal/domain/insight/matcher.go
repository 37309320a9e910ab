package insight

import (
	"github.com/stridecare/recovery/internal/domain/assessment"
)

// Match returns the catalog entries whose every bound is satisfied by the
// assessment snapshot, excluding already-completed ids. An entry with no
// bounds matches everyone. A bound on a metric the snapshot carries no value
// for (an optional metric that was never reported) does not match: the entry
// is withheld rather than recommended on missing data. The result preserves
// catalog order.
func Match(catalog *Catalog, a *assessment.Assessment, completed map[string]bool) []*RecoveryInsight {
	matched := make([]*RecoveryInsight, 0)
	for _, entry := range catalog.Entries() {
		if completed[entry.ID] {
			continue
		}
		if matches(entry, a) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func matches(entry *RecoveryInsight, a *assessment.Assessment) bool {
	for _, b := range entry.Bounds {
		v, ok := a.MetricValue(b.Metric)
		if !ok {
			return false
		}
		if !b.Contains(v) {
			return false
		}
	}
	return true
}
