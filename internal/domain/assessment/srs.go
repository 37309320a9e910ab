package assessment

import (
	"fmt"
	"math"

	"github.com/stridecare/recovery/internal/platform/apperr"
)

const (
	SRSMin = 0
	SRSMax = 11
)

// ComputeSRS produces the Stride Recovery Score for a normalized assessment:
// a weighted sum of the inverted pain scale, self-reported confidence, the
// global rating of change (follow-up forms only), and the milestone and
// clinician-verification bonuses, rounded and clamped to [0, 11].
//
// Range errors here indicate an assessment that bypassed normalization;
// they are reported as invariant failures, not coerced.
func ComputeSRS(a *Assessment, cfg *ScoringConfig) (int, error) {
	if a.VAS < 0 || a.VAS > 10 {
		return 0, apperr.Invariant(fmt.Sprintf("vas out of range: %d", a.VAS))
	}
	if a.Confidence < 0 || a.Confidence > 10 {
		return 0, apperr.Invariant(fmt.Sprintf("confidence out of range: %d", a.Confidence))
	}
	if a.GROC != nil && (*a.GROC < -7 || *a.GROC > 7) {
		return 0, apperr.Invariant(fmt.Sprintf("groc out of range: %d", *a.GROC))
	}

	w := cfg.SRS
	raw := w.VASInverse*float64(10-a.VAS)/10 + w.Confidence*float64(a.Confidence)/10

	if a.FormType == FormTypeFollowUp && a.GROC != nil {
		raw += w.GROC * float64(*a.GROC+7) / 14
	}
	if a.MilestoneAchieved {
		raw += w.MilestoneBonus
	}
	if a.ClinicianVerified {
		raw += w.VerifiedBonus
	}

	score := int(math.Round(raw))
	if score < SRSMin {
		score = SRSMin
	}
	if score > SRSMax {
		score = SRSMax
	}
	return score, nil
}
