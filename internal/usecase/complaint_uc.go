package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/satvikkitm/c-mgmtsystm/internal/domain"
)

type ComplaintUC struct {
	Complaints domain.ComplaintRepo
}

// CostInput accepts the cost field as either a JSON number or the raw text
// of a form input. Anything non-numeric coerces to zero at submit time.
type CostInput string

func (c *CostInput) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = CostInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*c = CostInput(n.String())
		return nil
	}
	*c = ""
	return nil
}

func (c CostInput) Value() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(c)), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Form is the draft as submitted, before coercion and normalization.
type Form struct {
	Date                   string    `json:"date"`
	CustomerName           string    `json:"customer_name"`
	Address                string    `json:"address"`
	Place                  string    `json:"place"`
	ContactNumber          string    `json:"contact_number"`
	MachineType            string    `json:"machine_type"`
	MachineNumber          string    `json:"machine_number"`
	MachineCapacity        string    `json:"machine_capacity"`
	Company                string    `json:"company"`
	CompanyComplaintNumber string    `json:"company_complaint_number"`
	Fault                  string    `json:"fault"`
	WorkDone               string    `json:"work_done"`
	PartsUsed              string    `json:"parts_used"`
	Resolution             string    `json:"resolution"`
	Cost                   CostInput `json:"cost"`
	TechnicianName         string    `json:"technician_name"`
	CompletionDate         string    `json:"completion_date"`
	Status                 string    `json:"status"`
}

var _ json.Unmarshaler = (*CostInput)(nil)

// Validate checks the required fields and the status enum. Nothing is sent
// to the store while the form is invalid.
func (f Form) Validate() error {
	var missing []string
	if strings.TrimSpace(f.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(f.MachineType) == "" {
		missing = append(missing, "machine_type")
	}
	if strings.TrimSpace(f.Fault) == "" {
		missing = append(missing, "fault")
	}
	if strings.TrimSpace(f.Date) == "" {
		missing = append(missing, "date")
	}
	if f.Status == "" || !domain.Status(f.Status).Valid() {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}
	return nil
}

// Draft normalizes the form into the store shape: non-numeric cost becomes
// zero, an empty completion date becomes null rather than empty text.
func (f Form) Draft() domain.Draft {
	var completion *string
	if d := strings.TrimSpace(f.CompletionDate); d != "" {
		completion = &d
	}
	return domain.Draft{
		Date:                   f.Date,
		CustomerName:           f.CustomerName,
		Address:                f.Address,
		Place:                  f.Place,
		ContactNumber:          f.ContactNumber,
		MachineType:            f.MachineType,
		MachineNumber:          f.MachineNumber,
		MachineCapacity:        f.MachineCapacity,
		Company:                f.Company,
		CompanyComplaintNumber: f.CompanyComplaintNumber,
		Fault:                  f.Fault,
		WorkDone:               f.WorkDone,
		PartsUsed:              f.PartsUsed,
		Resolution:             f.Resolution,
		Cost:                   f.Cost.Value(),
		TechnicianName:         f.TechnicianName,
		CompletionDate:         completion,
		Status:                 domain.Status(f.Status),
	}
}

// List fetches every record and applies the dashboard filters in memory,
// preserving the store's newest-first order.
func (uc *ComplaintUC) List(ctx context.Context, f domain.Filter) ([]domain.Complaint, error) {
	list, err := uc.Complaints.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Visible(list, f), nil
}

func (uc *ComplaintUC) Get(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	return uc.Complaints.FindByID(ctx, id)
}

// Create validates the form and inserts a new complaint. Status defaults to
// Open when the form leaves it at the zero value.
func (uc *ComplaintUC) Create(ctx context.Context, f Form) (*domain.Complaint, error) {
	if f.Status == "" {
		f.Status = string(domain.StatusOpen)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return uc.Complaints.Create(ctx, f.Draft())
}

// Update validates the form and overwrites every mutable field of the record
// matching id. ID and complaint number never change.
func (uc *ComplaintUC) Update(ctx context.Context, id uuid.UUID, f Form) (*domain.Complaint, error) {
	if id == uuid.Nil {
		return nil, domain.ErrNotFound
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return uc.Complaints.Update(ctx, id, f.Draft())
}

func (uc *ComplaintUC) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.ErrNotFound
	}
	return uc.Complaints.Delete(ctx, id)
}
