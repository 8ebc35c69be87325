package domain

import "strconv"

// ExportHeader is the fixed column order of the download projection.
var ExportHeader = []string{
	"Complaint Number",
	"Date",
	"Customer Name",
	"Address",
	"Place",
	"Contact Number",
	"Company Complaint Number",
	"Machine Number",
	"Machine Type",
	"Machine Capacity",
	"Company",
	"Fault",
	"Work Done",
	"Parts Used",
	"Cost",
	"Technician Name",
	"Completion Date",
	"Status",
}

// ExportRow flattens one complaint into the ExportHeader column order.
func ExportRow(c Complaint) []string {
	completion := ""
	if c.CompletionDate != nil {
		completion = *c.CompletionDate
	}
	return []string{
		c.ComplaintNumber,
		c.Date,
		c.CustomerName,
		c.Address,
		c.Place,
		c.ContactNumber,
		c.CompanyComplaintNumber,
		c.MachineNumber,
		c.MachineType,
		c.MachineCapacity,
		c.Company,
		c.Fault,
		c.WorkDone,
		c.PartsUsed,
		strconv.FormatFloat(c.Cost, 'f', -1, 64),
		c.TechnicianName,
		completion,
		string(c.Status),
	}
}

// InDateRange reports whether c.Date falls inside [from, to]. Either bound
// may be empty for an open side. ISO dates compare lexicographically.
func InDateRange(c Complaint, from, to string) bool {
	if from != "" && c.Date < from {
		return false
	}
	if to != "" && c.Date > to {
		return false
	}
	return true
}

// ExportFilename builds the download name for a date sub-range export,
// e.g. complaints_2024-01-01_to_end_2024-02-01.csv (without extension).
func ExportFilename(from, to, today string) string {
	if from == "" {
		from = "start"
	}
	if to == "" {
		to = "end"
	}
	return "complaints_" + from + "_to_" + to + "_" + today
}
