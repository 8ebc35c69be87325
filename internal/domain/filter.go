package domain

import "strings"

// Filter holds the three dashboard filters. Empty values match everything.
type Filter struct {
	Search string
	Date   string
	Status string
}

func (f Filter) matches(c Complaint) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		hit := strings.Contains(strings.ToLower(c.CustomerName), q) ||
			strings.Contains(strings.ToLower(c.MachineNumber), q) ||
			strings.Contains(strings.ToLower(c.ContactNumber), q)
		if !hit {
			return false
		}
	}
	if f.Date != "" && c.Date != f.Date {
		return false
	}
	if f.Status != "" && string(c.Status) != f.Status {
		return false
	}
	return true
}

// Visible returns the subset of records matching f, in the original order.
func Visible(records []Complaint, f Filter) []Complaint {
	out := make([]Complaint, 0, len(records))
	for _, c := range records {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}
