package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

// Valid reports whether s is one of the two persistable status values.
func (s Status) Valid() bool { return s == StatusOpen || s == StatusClosed }

// MachineTypes are the appliance categories offered by the intake form.
// The column itself is free text so legacy rows with other labels still load.
var MachineTypes = []string{"WM", "Fridge", "AC", "TV", "Other"}

// Complaint is a single service ticket for one customer/machine issue.
// Dates are kept as ISO calendar strings (yyyy-mm-dd): the filter contract
// is exact string equality, not range math.
type Complaint struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ComplaintNumber        string    `gorm:"size:20;uniqueIndex" json:"complaint_number"`
	Date                   string    `gorm:"size:10;not null;index" json:"date"`
	CustomerName           string    `gorm:"size:140;not null" json:"customer_name"`
	Address                string    `gorm:"type:text" json:"address"`
	Place                  string    `gorm:"size:140" json:"place"`
	ContactNumber          string    `gorm:"size:50" json:"contact_number"`
	MachineType            string    `gorm:"size:60;not null" json:"machine_type"`
	MachineNumber          string    `gorm:"size:100" json:"machine_number"`
	MachineCapacity        string    `gorm:"size:60" json:"machine_capacity"`
	Company                string    `gorm:"size:100" json:"company"`
	CompanyComplaintNumber string    `gorm:"size:100" json:"company_complaint_number"`
	Fault                  string    `gorm:"type:text;not null" json:"fault"`
	WorkDone               string    `gorm:"type:text" json:"work_done"`
	PartsUsed              string    `gorm:"type:text" json:"parts_used"`
	Resolution             string    `gorm:"type:text" json:"resolution"`
	Cost                   float64   `gorm:"type:decimal(12,2);default:0" json:"cost"`
	TechnicianName         string    `gorm:"size:140" json:"technician_name"`
	CompletionDate         *string   `gorm:"size:10" json:"completion_date"`
	Status                 Status    `gorm:"type:varchar(10);index" json:"status"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Draft is the client-supplied subset of Complaint. ID, complaint number and
// timestamps are store-assigned and never appear here.
type Draft struct {
	Date                   string
	CustomerName           string
	Address                string
	Place                  string
	ContactNumber          string
	MachineType            string
	MachineNumber          string
	MachineCapacity        string
	Company                string
	CompanyComplaintNumber string
	Fault                  string
	WorkDone               string
	PartsUsed              string
	Resolution             string
	Cost                   float64
	TechnicianName         string
	CompletionDate         *string
	Status                 Status
}

type ComplaintRepo interface {
	ListAll(ctx context.Context) ([]Complaint, error)
	List(ctx context.Context, f Filter) ([]Complaint, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Complaint, error)
	Create(ctx context.Context, d Draft) (*Complaint, error)
	Update(ctx context.Context, id uuid.UUID, d Draft) (*Complaint, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
