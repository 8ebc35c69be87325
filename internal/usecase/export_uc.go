package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/satvikkitm/c-mgmtsystm/internal/domain"
)

type ExportUC struct {
	Complaints domain.ComplaintRepo
}

const exportSheet = "Complaints"

func (uc *ExportUC) rows(ctx context.Context, f domain.Filter, from, to string) ([]domain.Complaint, error) {
	list, err := uc.Complaints.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	visible := domain.Visible(list, f)
	out := make([]domain.Complaint, 0, len(visible))
	for _, c := range visible {
		if domain.InDateRange(c, from, to) {
			out = append(out, c)
		}
	}
	return out, nil
}

// CSV renders the visible set, restricted to [from, to], as a CSV attachment.
// Returns the file body and the download filename.
func (uc *ExportUC) CSV(ctx context.Context, f domain.Filter, from, to string) ([]byte, string, error) {
	list, err := uc.rows(ctx, f, from, to)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(domain.ExportHeader); err != nil {
		return nil, "", err
	}
	for _, c := range list {
		if err := w.Write(domain.ExportRow(c)); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	name := domain.ExportFilename(from, to, time.Now().Format("2006-01-02")) + ".csv"
	return buf.Bytes(), name, nil
}

// XLSX renders the same projection as a single-sheet workbook.
func (uc *ExportUC) XLSX(ctx context.Context, f domain.Filter, from, to string) ([]byte, string, error) {
	list, err := uc.rows(ctx, f, from, to)
	if err != nil {
		return nil, "", err
	}
	x := excelize.NewFile()
	defer x.Close()
	idx, err := x.NewSheet(exportSheet)
	if err != nil {
		return nil, "", err
	}
	x.SetActiveSheet(idx)
	_ = x.DeleteSheet("Sheet1")

	header := make([]any, len(domain.ExportHeader))
	for i, h := range domain.ExportHeader {
		header[i] = h
	}
	if err := x.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, "", err
	}
	for i, c := range list {
		row := domain.ExportRow(c)
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := x.SetSheetRow(exportSheet, cell, &cells); err != nil {
			return nil, "", err
		}
	}
	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return nil, "", err
	}
	name := domain.ExportFilename(from, to, time.Now().Format("2006-01-02")) + ".xlsx"
	return buf.Bytes(), name, nil
}
