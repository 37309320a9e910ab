package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. A record is created when a clinician
// enrolls someone in the recovery program.
type Patient struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	FirstName   string     `db:"first_name" json:"first_name"`
	LastName    string     `db:"last_name" json:"last_name"`
	Email       string     `db:"email" json:"email"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Condition   *string    `db:"condition" json:"condition,omitempty"`
	SurgeryDate *time.Time `db:"surgery_date" json:"surgery_date,omitempty"`
	ProgramWeek int        `db:"program_week" json:"program_week"`
	Status      string     `db:"status" json:"status"`
	EnrolledAt  time.Time  `db:"enrolled_at" json:"enrolled_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Active reports whether the patient can still submit assessments.
func (p *Patient) Active() bool {
	return p.Status == "active"
}
