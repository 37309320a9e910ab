package assessment

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func TestComputeSRS_Bounds(t *testing.T) {
	cfg := DefaultScoringConfig()

	// Worst possible follow-up.
	worst := &Assessment{FormType: FormTypeFollowUp, VAS: 10, Confidence: 0, GROC: intPtr(-7)}
	score, err := ComputeSRS(worst, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Errorf("worst case score = %d, want 0", score)
	}

	// Best possible follow-up with both bonuses.
	best := &Assessment{
		FormType: FormTypeFollowUp, VAS: 0, Confidence: 10, GROC: intPtr(7),
		MilestoneAchieved: true, ClinicianVerified: true,
	}
	score, err = ComputeSRS(best, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != SRSMax {
		t.Errorf("best case score = %d, want %d", score, SRSMax)
	}
}

func TestComputeSRS_ExhaustiveRange(t *testing.T) {
	cfg := DefaultScoringConfig()
	for vas := 0; vas <= 10; vas++ {
		for conf := 0; conf <= 10; conf++ {
			for groc := -7; groc <= 7; groc++ {
				a := &Assessment{FormType: FormTypeFollowUp, VAS: vas, Confidence: conf, GROC: intPtr(groc)}
				score, err := ComputeSRS(a, cfg)
				if err != nil {
					t.Fatalf("vas=%d conf=%d groc=%d: %v", vas, conf, groc, err)
				}
				if score < SRSMin || score > SRSMax {
					t.Fatalf("vas=%d conf=%d groc=%d: score %d out of [%d,%d]",
						vas, conf, groc, score, SRSMin, SRSMax)
				}
			}
		}
	}
}

func TestComputeSRS_Deterministic(t *testing.T) {
	cfg := DefaultScoringConfig()
	a := &Assessment{FormType: FormTypeFollowUp, VAS: 4, Confidence: 6, GROC: intPtr(3)}
	first, err := ComputeSRS(a, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := ComputeSRS(a, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("run %d: score %d != %d", i, got, first)
		}
	}
}

func TestComputeSRS_IntakeIgnoresGROCTerm(t *testing.T) {
	cfg := DefaultScoringConfig()
	intake := &Assessment{FormType: FormTypeIntake, VAS: 5, Confidence: 5}
	followUp := &Assessment{FormType: FormTypeFollowUp, VAS: 5, Confidence: 5, GROC: intPtr(7)}

	intakeScore, err := ComputeSRS(intake, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	followScore, err := ComputeSRS(followUp, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if followScore <= intakeScore {
		t.Errorf("strong improvement should raise the follow-up score: intake=%d follow=%d",
			intakeScore, followScore)
	}
}

func TestComputeSRS_Bonuses(t *testing.T) {
	cfg := DefaultScoringConfig()
	base := &Assessment{FormType: FormTypeIntake, VAS: 5, Confidence: 5}
	boosted := &Assessment{
		FormType: FormTypeIntake, VAS: 5, Confidence: 5,
		MilestoneAchieved: true, ClinicianVerified: true,
	}
	baseScore, _ := ComputeSRS(base, cfg)
	boostedScore, _ := ComputeSRS(boosted, cfg)
	if boostedScore != baseScore+1 {
		t.Errorf("both bonuses should add one point: base=%d boosted=%d", baseScore, boostedScore)
	}
}

func TestComputeSRS_InvariantViolations(t *testing.T) {
	cfg := DefaultScoringConfig()
	tests := []struct {
		name string
		a    *Assessment
	}{
		{"vas too high", &Assessment{FormType: FormTypeIntake, VAS: 11, Confidence: 5}},
		{"vas negative", &Assessment{FormType: FormTypeIntake, VAS: -1, Confidence: 5}},
		{"confidence too high", &Assessment{FormType: FormTypeIntake, VAS: 5, Confidence: 11}},
		{"groc out of range", &Assessment{FormType: FormTypeFollowUp, VAS: 5, Confidence: 5, GROC: intPtr(8)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeSRS(tt.a, cfg); err == nil {
				t.Error("expected error for out-of-range assessment")
			}
		})
	}
}
