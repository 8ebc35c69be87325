package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/satvikkitm/c-mgmtsystm/internal/domain"
)

type ComplaintRepo struct{ db *gorm.DB }

func NewComplaintRepo(db *gorm.DB) *ComplaintRepo { return &ComplaintRepo{db: db} }

// complaintNumber derives the human-facing ticket code from the current time.
// Collisions are possible in theory but not at human operation rates.
func complaintNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return "COMP" + ms[len(ms)-6:]
}

func (r *ComplaintRepo) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	var list []domain.Complaint
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, &domain.StoreError{Op: "list", Err: err}
	}
	return list, nil
}

// List pushes the dashboard filters into the query instead of scanning the
// full table client-side. Order matches ListAll.
func (r *ComplaintRepo) List(ctx context.Context, f domain.Filter) ([]domain.Complaint, error) {
	q := r.db.WithContext(ctx).Model(&domain.Complaint{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("LOWER(customer_name) LIKE LOWER(?) OR LOWER(machine_number) LIKE LOWER(?) OR LOWER(contact_number) LIKE LOWER(?)", like, like, like)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var list []domain.Complaint
	if err := q.Order("created_at desc").Find(&list).Error; err != nil {
		return nil, &domain.StoreError{Op: "list", Err: err}
	}
	return list, nil
}

func (r *ComplaintRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	var c domain.Complaint
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StoreError{Op: "find", Err: err}
	}
	return &c, nil
}

func (r *ComplaintRepo) Create(ctx context.Context, d domain.Draft) (*domain.Complaint, error) {
	c := domain.Complaint{
		ID:              uuid.New(),
		ComplaintNumber: complaintNumber(time.Now()),
	}
	applyDraft(&c, d)
	if c.Status == "" {
		c.Status = domain.StatusOpen
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, &domain.StoreError{Op: "create", Err: err}
	}
	return &c, nil
}

func (r *ComplaintRepo) Update(ctx context.Context, id uuid.UUID, d domain.Draft) (*domain.Complaint, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.StoreError{Op: "update", Err: domain.ErrNotFound}
		}
		return nil, err
	}
	applyDraft(c, d)
	// Save writes every mutable column: last edit wins in full.
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, &domain.StoreError{Op: "update", Err: err}
	}
	return c, nil
}

func (r *ComplaintRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// No existence check: deleting an already-gone row reads as success.
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Complaint{}).Error; err != nil {
		return &domain.StoreError{Op: "delete", Err: err}
	}
	return nil
}

// applyDraft overwrites every mutable field, leaving ID, ComplaintNumber and
// the gorm-managed timestamps alone.
func applyDraft(c *domain.Complaint, d domain.Draft) {
	c.Date = d.Date
	c.CustomerName = d.CustomerName
	c.Address = d.Address
	c.Place = d.Place
	c.ContactNumber = d.ContactNumber
	c.MachineType = d.MachineType
	c.MachineNumber = d.MachineNumber
	c.MachineCapacity = d.MachineCapacity
	c.Company = d.Company
	c.CompanyComplaintNumber = d.CompanyComplaintNumber
	c.Fault = d.Fault
	c.WorkDone = d.WorkDone
	c.PartsUsed = d.PartsUsed
	c.Resolution = d.Resolution
	c.Cost = d.Cost
	c.TechnicianName = d.TechnicianName
	c.CompletionDate = d.CompletionDate
	c.Status = d.Status
}
