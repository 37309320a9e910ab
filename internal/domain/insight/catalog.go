package insight

import (
	"fmt"

	"github.com/spf13/viper"
)

var knownMetrics = map[string]bool{
	"vas":            true,
	"pcs4":           true,
	"fear_avoidance": true,
	"confidence":     true,
	"stress":         true,
}

// Catalog is the process-wide read-only set of insights, in file order.
type Catalog struct {
	entries []*RecoveryInsight
	byID    map[string]*RecoveryInsight
}

// LoadCatalog reads and validates the insight catalog YAML. The server
// refuses to start on a malformed catalog rather than serving partial
// recommendations.
func LoadCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read insight catalog %s: %w", path, err)
	}

	var raw struct {
		Insights []*RecoveryInsight `mapstructure:"insights"`
	}
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unmarshal insight catalog: %w", err)
	}

	c := &Catalog{entries: raw.Insights, byID: make(map[string]*RecoveryInsight, len(raw.Insights))}
	for i, entry := range c.entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: id is required", i)
		}
		if _, dup := c.byID[entry.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", entry.ID)
		}
		if entry.Title == "" {
			return nil, fmt.Errorf("catalog entry %q: title is required", entry.ID)
		}
		if entry.Points <= 0 {
			return nil, fmt.Errorf("catalog entry %q: points must be positive, got %d", entry.ID, entry.Points)
		}
		for _, b := range entry.Bounds {
			if !knownMetrics[b.Metric] {
				return nil, fmt.Errorf("catalog entry %q: unknown metric %q", entry.ID, b.Metric)
			}
			if b.Min != nil && b.Max != nil && *b.Min > *b.Max {
				return nil, fmt.Errorf("catalog entry %q: metric %q has min %d > max %d",
					entry.ID, b.Metric, *b.Min, *b.Max)
			}
		}
		c.byID[entry.ID] = entry
	}
	return c, nil
}

// NewCatalog builds a catalog from already-validated entries; used in tests.
func NewCatalog(entries ...*RecoveryInsight) *Catalog {
	c := &Catalog{entries: entries, byID: make(map[string]*RecoveryInsight, len(entries))}
	for _, e := range entries {
		c.byID[e.ID] = e
	}
	return c
}

// Get returns the entry with the given id, or nil.
func (c *Catalog) Get(id string) *RecoveryInsight {
	return c.byID[id]
}

// Entries returns all entries in catalog order.
func (c *Catalog) Entries() []*RecoveryInsight {
	return c.entries
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
