package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/satvikkitm/c-mgmtsystm/internal/adapters/httpserver"
	"github.com/satvikkitm/c-mgmtsystm/internal/adapters/repo/postgres"
	"github.com/satvikkitm/c-mgmtsystm/internal/domain"
	"github.com/satvikkitm/c-mgmtsystm/internal/usecase"
)

type App struct {
	DB           *gorm.DB
	ComplaintUC  *usecase.ComplaintUC
	ExportUC     *usecase.ExportUC
	ComplaintsDB domain.ComplaintRepo
}

func NewApp(db *gorm.DB) (*App, error) {
	repo := postgres.NewComplaintRepo(db)

	app := &App{
		DB:           db,
		ComplaintsDB: repo,
	}
	app.ComplaintUC = &usecase.ComplaintUC{Complaints: repo}
	app.ExportUC = &usecase.ExportUC{Complaints: repo}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ComplaintUC, a.ExportUC)
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(&domain.Complaint{}); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_complaints_created_at ON complaints(created_at DESC)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints(status)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_complaints_date ON complaints(date)").Error

	return nil
}
