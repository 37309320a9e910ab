package assessment

import (
	"fmt"

	"github.com/stridecare/recovery/internal/platform/apperr"
)

// ClassifyTier maps an assessment to a routing tier 1–4 from the combined
// pain + stress + mood load. Threshold values belong to the lower tier, so
// with the default thresholds (2, 5, 8) a total of 2 is tier 1 and a total
// of 3 is tier 2. The result is non-decreasing in the total.
func ClassifyTier(a *Assessment, cfg *ScoringConfig) (int, error) {
	moodWeight, ok := cfg.MoodWeights[a.Mood]
	if !ok {
		return 0, apperr.Invariant(fmt.Sprintf("no mood weight for %q", a.Mood))
	}

	total := a.Pain + a.Stress + moodWeight
	for i, threshold := range cfg.TierThresholds {
		if total <= threshold {
			return i + 1, nil
		}
	}
	return len(cfg.TierThresholds) + 1, nil
}
