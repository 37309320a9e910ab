package assessment

import (
	"context"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	Latest(ctx context.Context, patientID uuid.UUID) (*Assessment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error)
}

type ScoreRepository interface {
	Create(ctx context.Context, s *SRSScoreRecord) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*SRSScoreRecord, int, error)
}
