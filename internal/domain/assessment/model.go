package assessment

import (
	"time"

	"github.com/google/uuid"
)

const (
	FormTypeIntake   = "intake"
	FormTypeFollowUp = "follow-up"
)

// Submission is the raw check-in form body as the portal frontend sends it.
// Pointer fields distinguish "absent" from zero.
type Submission struct {
	PatientID         uuid.UUID `json:"patient_id"`
	FormType          string    `json:"form_type"`
	Pain              *int      `json:"pain"`
	Stress            *int      `json:"stress"`
	Mood              string    `json:"mood"`
	VAS               *int      `json:"vas"`
	GROC              *int      `json:"groc"`
	Confidence        *int      `json:"confidence"`
	PCS4              *int      `json:"pcs4"`
	FearAvoidance     *int      `json:"fear_avoidance"`
	MilestoneAchieved bool      `json:"milestone_achieved"`
	ClinicianVerified bool      `json:"clinician_verified"`
}

// Assessment maps to the assessment table. Rows are append-only: a submitted
// assessment is never updated or deleted.
type Assessment struct {
	ID                uuid.UUID `db:"id" json:"id"`
	PatientID         uuid.UUID `db:"patient_id" json:"patient_id"`
	FormType          string    `db:"form_type" json:"form_type"`
	Pain              int       `db:"pain" json:"pain"`
	Stress            int       `db:"stress" json:"stress"`
	Mood              string    `db:"mood" json:"mood"`
	VAS               int       `db:"vas" json:"vas"`
	GROC              *int      `db:"groc" json:"groc,omitempty"`
	Confidence        int       `db:"confidence" json:"confidence"`
	PCS4              *int      `db:"pcs4" json:"pcs4,omitempty"`
	FearAvoidance     *int      `db:"fear_avoidance" json:"fear_avoidance,omitempty"`
	MilestoneAchieved bool      `db:"milestone_achieved" json:"milestone_achieved"`
	ClinicianVerified bool      `db:"clinician_verified" json:"clinician_verified"`
	Tier              int       `db:"tier" json:"tier"`
	SubmittedAt       time.Time `db:"submitted_at" json:"submitted_at"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// MetricValue returns the named metric from this assessment, or ok=false
// when the metric was not reported (optional extended metrics).
func (a *Assessment) MetricValue(metric string) (int, bool) {
	switch metric {
	case "vas":
		return a.VAS, true
	case "confidence":
		return a.Confidence, true
	case "stress":
		return a.Stress, true
	case "pcs4":
		if a.PCS4 == nil {
			return 0, false
		}
		return *a.PCS4, true
	case "fear_avoidance":
		if a.FearAvoidance == nil {
			return 0, false
		}
		return *a.FearAvoidance, true
	}
	return 0, false
}

// SRSScoreRecord maps to the srs_score table. One row is appended per
// submitted assessment; history is never rewritten and may move in either
// direction between check-ins.
type SRSScoreRecord struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PatientID          uuid.UUID `db:"patient_id" json:"patient_id"`
	Score              int       `db:"score" json:"score"`
	SourceAssessmentID uuid.UUID `db:"source_assessment_id" json:"source_assessment_id"`
	ComputedAt         time.Time `db:"computed_at" json:"computed_at"`
}

// SubmissionResult is the response body for a submitted check-in.
type SubmissionResult struct {
	Assessment *Assessment     `json:"assessment"`
	Score      *SRSScoreRecord `json:"srs_score"`
}
