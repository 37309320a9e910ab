package assessment

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"
)

// SRSWeights are the coefficients of the Stride Recovery Score formula.
// The defaults are chosen so the maximum attainable raw score is 11.
type SRSWeights struct {
	VASInverse     float64 `mapstructure:"vas_inverse"`
	Confidence     float64 `mapstructure:"confidence"`
	GROC           float64 `mapstructure:"groc"`
	MilestoneBonus float64 `mapstructure:"milestone_bonus"`
	VerifiedBonus  float64 `mapstructure:"verified_bonus"`
}

// ScoringConfig holds the tier classifier and SRS aggregator parameters.
// It is loaded once at startup and read-only afterwards.
type ScoringConfig struct {
	MoodWeights    map[string]int `mapstructure:"mood_weights"`
	TierThresholds []int          `mapstructure:"tier_thresholds"`
	SRS            SRSWeights     `mapstructure:"srs"`
}

// DefaultScoringConfig returns the shipped parameters, used when no scoring
// file is configured and as the baseline in tests.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		MoodWeights: map[string]int{
			"positive":   0,
			"neutral":    1,
			"negative":   2,
			"distressed": 3,
		},
		TierThresholds: []int{2, 5, 8},
		SRS: SRSWeights{
			VASInverse:     4,
			Confidence:     4,
			GROC:           2,
			MilestoneBonus: 0.5,
			VerifiedBonus:  0.5,
		},
	}
}

// LoadScoringConfig reads a scoring YAML file. Missing keys fall back to the
// defaults; the merged result is validated before use.
func LoadScoringConfig(path string) (*ScoringConfig, error) {
	cfg := DefaultScoringConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scoring config %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal scoring config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *ScoringConfig) Validate() error {
	for _, mood := range []string{"positive", "neutral", "negative", "distressed"} {
		if _, ok := c.MoodWeights[mood]; !ok {
			return fmt.Errorf("mood_weights missing %q", mood)
		}
	}
	for mood, w := range c.MoodWeights {
		if w < 0 {
			return fmt.Errorf("mood_weights[%s] must not be negative", mood)
		}
	}
	if len(c.TierThresholds) != 3 {
		return fmt.Errorf("tier_thresholds must have 3 entries, got %d", len(c.TierThresholds))
	}
	if !sort.IntsAreSorted(c.TierThresholds) {
		return fmt.Errorf("tier_thresholds must be ascending: %v", c.TierThresholds)
	}
	if c.SRS.VASInverse < 0 || c.SRS.Confidence < 0 || c.SRS.GROC < 0 ||
		c.SRS.MilestoneBonus < 0 || c.SRS.VerifiedBonus < 0 {
		return fmt.Errorf("srs weights must not be negative")
	}
	return nil
}
