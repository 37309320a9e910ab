package assessment

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/stridecare/recovery/internal/platform/apperr"
)

func validSubmission() *Submission {
	return &Submission{
		PatientID:  uuid.New(),
		FormType:   FormTypeIntake,
		Pain:       intPtr(2),
		Stress:     intPtr(1),
		Mood:       "neutral",
		VAS:        intPtr(4),
		Confidence: intPtr(6),
	}
}

func TestNormalize_Valid(t *testing.T) {
	a, err := Normalize(validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Pain != 2 || a.Stress != 1 || a.Mood != "neutral" || a.VAS != 4 || a.Confidence != 6 {
		t.Errorf("normalized values wrong: %+v", a)
	}
	if a.SubmittedAt.IsZero() {
		t.Error("expected submitted_at to be set")
	}
	if a.GROC != nil {
		t.Error("intake should carry no groc")
	}
}

func TestNormalize_FollowUpRequiresGROC(t *testing.T) {
	sub := validSubmission()
	sub.FormType = FormTypeFollowUp
	_, err := Normalize(sub)
	if fieldOf(err) != "groc" {
		t.Errorf("expected groc validation error, got %v", err)
	}

	sub.GROC = intPtr(3)
	a, err := Normalize(sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.GROC == nil || *a.GROC != 3 {
		t.Errorf("groc not carried: %+v", a.GROC)
	}
}

func TestNormalize_IntakeDropsStrayGROC(t *testing.T) {
	sub := validSubmission()
	sub.GROC = intPtr(5)
	a, err := Normalize(sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.GROC != nil {
		t.Error("stray groc on intake should be dropped")
	}
}

func TestNormalize_FieldViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Submission)
		field  string
	}{
		{"missing patient", func(s *Submission) { s.PatientID = uuid.Nil }, "patient_id"},
		{"bad form type", func(s *Submission) { s.FormType = "quarterly" }, "form_type"},
		{"missing pain", func(s *Submission) { s.Pain = nil }, "pain"},
		{"pain too high", func(s *Submission) { s.Pain = intPtr(7) }, "pain"},
		{"pain negative", func(s *Submission) { s.Pain = intPtr(-1) }, "pain"},
		{"stress too high", func(s *Submission) { s.Stress = intPtr(4) }, "stress"},
		{"bad mood", func(s *Submission) { s.Mood = "meh" }, "mood"},
		{"vas too high", func(s *Submission) { s.VAS = intPtr(11) }, "vas"},
		{"missing confidence", func(s *Submission) { s.Confidence = nil }, "confidence"},
		{"confidence too high", func(s *Submission) { s.Confidence = intPtr(11) }, "confidence"},
		{"pcs4 too high", func(s *Submission) { s.PCS4 = intPtr(17) }, "pcs4"},
		{"fear avoidance too high", func(s *Submission) { s.FearAvoidance = intPtr(11) }, "fear_avoidance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(sub)
			_, err := Normalize(sub)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if fieldOf(err) != tt.field {
				t.Errorf("error names field %q, want %q", fieldOf(err), tt.field)
			}
		})
	}
}

func TestNormalize_OptionalMetrics(t *testing.T) {
	sub := validSubmission()
	sub.PCS4 = intPtr(12)
	sub.FearAvoidance = intPtr(7)
	a, err := Normalize(sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PCS4 == nil || *a.PCS4 != 12 {
		t.Errorf("pcs4 not carried: %+v", a.PCS4)
	}
	if a.FearAvoidance == nil || *a.FearAvoidance != 7 {
		t.Errorf("fear_avoidance not carried: %+v", a.FearAvoidance)
	}
}

func TestMetricValue(t *testing.T) {
	a := &Assessment{VAS: 4, Confidence: 6, Stress: 1}
	if v, ok := a.MetricValue("vas"); !ok || v != 4 {
		t.Errorf("vas = %d,%v", v, ok)
	}
	if _, ok := a.MetricValue("pcs4"); ok {
		t.Error("unreported pcs4 should be absent")
	}
	a.PCS4 = intPtr(9)
	if v, ok := a.MetricValue("pcs4"); !ok || v != 9 {
		t.Errorf("pcs4 = %d,%v", v, ok)
	}
	if _, ok := a.MetricValue("heart_rate"); ok {
		t.Error("unknown metric should be absent")
	}
}

func fieldOf(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
