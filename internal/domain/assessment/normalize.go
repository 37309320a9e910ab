package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridecare/recovery/internal/platform/apperr"
)

var validMoods = map[string]bool{
	"positive":   true,
	"neutral":    true,
	"negative":   true,
	"distressed": true,
}

var validFormTypes = map[string]bool{
	FormTypeIntake:   true,
	FormTypeFollowUp: true,
}

func requireRange(field string, v *int, min, max int) (int, error) {
	if v == nil {
		return 0, apperr.Validation(field, field+" is required")
	}
	if *v < min || *v > max {
		return 0, apperr.Validation(field, fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, *v))
	}
	return *v, nil
}

func optionalRange(field string, v *int, min, max int) (*int, error) {
	if v == nil {
		return nil, nil
	}
	if *v < min || *v > max {
		return nil, apperr.Validation(field, fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, *v))
	}
	return v, nil
}

// Normalize validates a raw submission and produces the canonical assessment
// record. All range violations are reported as validation errors naming the
// offending field; a successfully normalized assessment is guaranteed to be
// in range for the classifier and aggregator.
func Normalize(sub *Submission) (*Assessment, error) {
	if sub.PatientID == uuid.Nil {
		return nil, apperr.Validation("patient_id", "patient_id is required")
	}
	if !validFormTypes[sub.FormType] {
		return nil, apperr.Validation("form_type", "form_type must be intake or follow-up")
	}
	if !validMoods[sub.Mood] {
		return nil, apperr.Validation("mood", "mood must be positive, neutral, negative, or distressed")
	}

	a := &Assessment{
		PatientID:         sub.PatientID,
		FormType:          sub.FormType,
		Mood:              sub.Mood,
		MilestoneAchieved: sub.MilestoneAchieved,
		ClinicianVerified: sub.ClinicianVerified,
		SubmittedAt:       time.Now().UTC(),
	}

	var err error
	if a.Pain, err = requireRange("pain", sub.Pain, 0, 6); err != nil {
		return nil, err
	}
	if a.Stress, err = requireRange("stress", sub.Stress, 0, 3); err != nil {
		return nil, err
	}
	if a.VAS, err = requireRange("vas", sub.VAS, 0, 10); err != nil {
		return nil, err
	}
	if a.Confidence, err = requireRange("confidence", sub.Confidence, 0, 10); err != nil {
		return nil, err
	}

	// GROC only has meaning relative to a baseline, so intake forms carry
	// none; a stray value on an intake submission is dropped.
	if sub.FormType == FormTypeFollowUp {
		groc, err := requireRange("groc", sub.GROC, -7, 7)
		if err != nil {
			return nil, err
		}
		a.GROC = &groc
	}

	if a.PCS4, err = optionalRange("pcs4", sub.PCS4, 0, 16); err != nil {
		return nil, err
	}
	if a.FearAvoidance, err = optionalRange("fear_avoidance", sub.FearAvoidance, 0, 10); err != nil {
		return nil, err
	}

	return a, nil
}
