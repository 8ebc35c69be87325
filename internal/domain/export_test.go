package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportRowColumnOrder(t *testing.T) {
	done := "2024-01-20"
	c := Complaint{
		ComplaintNumber:        "COMP123456",
		Date:                   "2024-01-10",
		CustomerName:           "Alice",
		Address:                "12 Main St",
		Place:                  "Pune",
		ContactNumber:          "9876543210",
		CompanyComplaintNumber: "LG-99",
		MachineNumber:          "WM-1",
		MachineType:            "WM",
		MachineCapacity:        "7kg",
		Company:                "LG",
		Fault:                  "Leaks",
		WorkDone:               "Replaced gasket",
		PartsUsed:              "Gasket",
		Cost:                   450.5,
		TechnicianName:         "Ravi",
		CompletionDate:         &done,
		Status:                 StatusClosed,
	}
	row := ExportRow(c)
	require.Len(t, row, len(ExportHeader))
	require.Equal(t, "COMP123456", row[0])
	require.Equal(t, "2024-01-10", row[1])
	require.Equal(t, "Alice", row[2])
	require.Equal(t, "LG-99", row[6])
	require.Equal(t, "WM", row[8])
	require.Equal(t, "450.5", row[14])
	require.Equal(t, "2024-01-20", row[16])
	require.Equal(t, "Closed", row[17])
}

func TestExportRowNilCompletionDate(t *testing.T) {
	row := ExportRow(Complaint{Status: StatusOpen})
	require.Equal(t, "", row[16])
	require.Equal(t, "0", row[14])
}

func TestInDateRange(t *testing.T) {
	c := Complaint{Date: "2024-01-15"}
	require.True(t, InDateRange(c, "", ""))
	require.True(t, InDateRange(c, "2024-01-15", "2024-01-15"))
	require.True(t, InDateRange(c, "2024-01-01", ""))
	require.True(t, InDateRange(c, "", "2024-02-01"))
	require.False(t, InDateRange(c, "2024-01-16", ""))
	require.False(t, InDateRange(c, "", "2024-01-14"))
}

func TestExportFilename(t *testing.T) {
	require.Equal(t, "complaints_start_to_end_2024-02-01", ExportFilename("", "", "2024-02-01"))
	require.Equal(t, "complaints_2024-01-01_to_end_2024-02-01", ExportFilename("2024-01-01", "", "2024-02-01"))
	require.Equal(t, "complaints_2024-01-01_to_2024-01-31_2024-02-01", ExportFilename("2024-01-01", "2024-01-31", "2024-02-01"))
}
