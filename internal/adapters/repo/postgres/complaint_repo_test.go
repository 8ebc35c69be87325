package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/satvikkitm/c-mgmtsystm/internal/domain"
)

// Per-test in-memory database to avoid cross-test interference.
func setupRepo(t *testing.T) *ComplaintRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Complaint{}))
	return NewComplaintRepo(db)
}

func draft(name string) domain.Draft {
	return domain.Draft{
		Date:         "2024-01-10",
		CustomerName: name,
		MachineType:  "WM",
		Fault:        "Leaks",
		Status:       domain.StatusOpen,
	}
}

// The ticket code comes from the clock; back-to-back creates inside the same
// millisecond would collide on the unique index.
func pause() { time.Sleep(2 * time.Millisecond) }

func TestCreateAssignsIdentityAndDefaults(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	d := draft("Alice")
	d.Status = ""
	c, err := r.Create(ctx, d)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, c.ID)
	require.NotEmpty(t, c.ComplaintNumber)
	require.Regexp(t, `^COMP\d{6}$`, c.ComplaintNumber)
	require.Equal(t, domain.StatusOpen, c.Status)
	require.Nil(t, c.CompletionDate)

	list, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, c.ID, list[0].ID)
	require.Equal(t, "Alice", list[0].CustomerName)
}

func TestListAllNewestFirst(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	first, err := r.Create(ctx, draft("Alice"))
	require.NoError(t, err)
	pause()
	second, err := r.Create(ctx, draft("Bob"))
	require.NoError(t, err)
	pause()
	third, err := r.Create(ctx, draft("Carol"))
	require.NoError(t, err)

	list, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, third.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)
	require.Equal(t, first.ID, list[2].ID)
}

func TestUpdateReplacesMutableFieldsOnly(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	c, err := r.Create(ctx, draft("Alice"))
	require.NoError(t, err)

	done := "2024-01-20"
	d := draft("Alice Updated")
	d.Status = domain.StatusClosed
	d.Cost = 450.5
	d.CompletionDate = &done
	d.WorkDone = "Replaced gasket"

	got, err := r.Update(ctx, c.ID, d)
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)
	require.Equal(t, c.ComplaintNumber, got.ComplaintNumber)
	require.Equal(t, "Alice Updated", got.CustomerName)
	require.Equal(t, domain.StatusClosed, got.Status)
	require.Equal(t, 450.5, got.Cost)
	require.NotNil(t, got.CompletionDate)
	require.Equal(t, done, *got.CompletionDate)

	list, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Alice Updated", list[0].CustomerName)
	require.Equal(t, c.ComplaintNumber, list[0].ComplaintNumber)
}

func TestUpdateMissingRecord(t *testing.T) {
	r := setupRepo(t)

	_, err := r.Update(context.Background(), uuid.New(), draft("Nobody"))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrNotFound)

	var se *domain.StoreError
	require.ErrorAs(t, err, &se)
}

func TestDeleteRemovesRecord(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	c, err := r.Create(ctx, draft("Alice"))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, c.ID))

	list, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDeleteMissingRecordIsSuccess(t *testing.T) {
	r := setupRepo(t)
	require.NoError(t, r.Delete(context.Background(), uuid.New()))
}

func TestFindByID(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	c, err := r.Create(ctx, draft("Alice"))
	require.NoError(t, err)

	got, err := r.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.ComplaintNumber, got.ComplaintNumber)

	_, err = r.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPushesFiltersIntoQuery(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, draft("John Smith"))
	require.NoError(t, err)
	pause()

	d := draft("Priya Patel")
	d.Date = "2024-01-11"
	d.Status = domain.StatusClosed
	d.MachineNumber = "AC-104"
	_, err = r.Create(ctx, d)
	require.NoError(t, err)

	got, err := r.List(ctx, domain.Filter{Search: "SMITH"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "John Smith", got[0].CustomerName)

	got, err = r.List(ctx, domain.Filter{Search: "ac-104"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Priya Patel", got[0].CustomerName)

	got, err = r.List(ctx, domain.Filter{Date: "2024-01-11", Status: "Closed"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = r.List(ctx, domain.Filter{Date: "2024-01-11", Status: "Open"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestComplaintNumberFormat(t *testing.T) {
	now := time.UnixMilli(1704067200123)
	require.Equal(t, "COMP200123", complaintNumber(now))
}
