package patient

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/stridecare/recovery/internal/platform/apperr"
	"github.com/stridecare/recovery/internal/platform/db"
)

type Service struct {
	patients PatientRepository
}

func NewService(patients PatientRepository) *Service {
	return &Service{patients: patients}
}

var validStatuses = map[string]bool{
	"active":     true,
	"paused":     true,
	"discharged": true,
	"archived":   true,
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return apperr.Validation("first_name", "first_name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return apperr.Validation("last_name", "last_name is required")
	}
	if !strings.Contains(p.Email, "@") {
		return apperr.Validation("email", "a valid email is required")
	}
	if p.Status == "" {
		p.Status = "active"
	}
	if !validStatuses[p.Status] {
		return apperr.Validation("status", "invalid status: "+p.Status)
	}
	if p.ProgramWeek < 0 {
		return apperr.Validation("program_week", "program_week must not be negative")
	}

	existing, err := s.patients.GetByEmail(ctx, p.Email)
	if err != nil && !db.IsNoRows(err) {
		return apperr.Upstream("check existing email", err)
	}
	if existing != nil {
		return apperr.Conflict("a patient with this email already exists")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperr.NotFound("patient not found")
		}
		return nil, apperr.Upstream("load patient", err)
	}
	return p, nil
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	existing, err := s.patients.GetByID(ctx, p.ID)
	if err != nil {
		if db.IsNoRows(err) {
			return apperr.NotFound("patient not found")
		}
		return apperr.Upstream("load patient", err)
	}
	if p.Status == "" {
		p.Status = existing.Status
	}
	if !validStatuses[p.Status] {
		return apperr.Validation("status", "invalid status: "+p.Status)
	}
	return s.patients.Update(ctx, p)
}

// ArchivePatient is a soft delete: the record and its assessment history are
// retained but the patient can no longer submit.
func (s *Service) ArchivePatient(ctx context.Context, id uuid.UUID) error {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return apperr.NotFound("patient not found")
		}
		return apperr.Upstream("load patient", err)
	}
	p.Status = "archived"
	return s.patients.Update(ctx, p)
}

func (s *Service) ListPatients(ctx context.Context, status string, limit, offset int) ([]*Patient, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, apperr.Validation("status", "invalid status: "+status)
	}
	return s.patients.List(ctx, status, limit, offset)
}
