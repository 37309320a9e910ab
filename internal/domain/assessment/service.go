package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stridecare/recovery/internal/domain/patient"
	"github.com/stridecare/recovery/internal/platform/apperr"
	"github.com/stridecare/recovery/internal/platform/db"
)

// PatientChecker is the slice of the patient repository the submit flow
// needs; satisfied by patient.PatientRepository.
type PatientChecker interface {
	GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service struct {
	assessments AssessmentRepository
	scores      ScoreRepository
	patients    PatientChecker
	cfg         *ScoringConfig
	tx          db.TxRunner
}

func NewService(assessments AssessmentRepository, scores ScoreRepository, patients PatientChecker, cfg *ScoringConfig, tx db.TxRunner) *Service {
	return &Service{assessments: assessments, scores: scores, patients: patients, cfg: cfg, tx: tx}
}

// Submit runs the full check-in pipeline: normalize the raw form, classify
// the routing tier, compute the recovery score, and append the assessment
// and score rows in a single transaction. No partial side effects: a failure
// at any step leaves the store untouched.
func (s *Service) Submit(ctx context.Context, sub *Submission) (*SubmissionResult, error) {
	a, err := Normalize(sub)
	if err != nil {
		return nil, err
	}

	p, err := s.patients.GetByID(ctx, a.PatientID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperr.NotFound("patient not found")
		}
		return nil, apperr.Upstream("load patient", err)
	}
	if !p.Active() {
		return nil, apperr.Validation("patient_id", "patient is not active")
	}

	if a.Tier, err = ClassifyTier(a, s.cfg); err != nil {
		return nil, err
	}
	score, err := ComputeSRS(a, s.cfg)
	if err != nil {
		return nil, err
	}

	rec := &SRSScoreRecord{
		PatientID:  a.PatientID,
		Score:      score,
		ComputedAt: time.Now().UTC(),
	}
	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.assessments.Create(ctx, a); err != nil {
			return err
		}
		rec.SourceAssessmentID = a.ID
		return s.scores.Create(ctx, rec)
	})
	if err != nil {
		return nil, apperr.Upstream("record assessment", err)
	}
	return &SubmissionResult{Assessment: a, Score: rec}, nil
}

func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperr.NotFound("assessment not found")
		}
		return nil, apperr.Upstream("load assessment", err)
	}
	return a, nil
}

// LatestAssessment returns the patient's most recent assessment, or a not
// found error when the patient has never submitted.
func (s *Service) LatestAssessment(ctx context.Context, patientID uuid.UUID) (*Assessment, error) {
	a, err := s.assessments.Latest(ctx, patientID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperr.NotFound("no assessments for patient")
		}
		return nil, apperr.Upstream("load latest assessment", err)
	}
	return a, nil
}

func (s *Service) ListAssessments(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	return s.assessments.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListScores(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*SRSScoreRecord, int, error) {
	return s.scores.ListByPatient(ctx, patientID, limit, offset)
}
