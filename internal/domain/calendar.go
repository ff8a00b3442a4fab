package domain

// Role of the authenticated user, supplied by the session collaborator
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCustomer Role = "customer"
)

// DayClass is the CSS-style classification of a calendar day cell
type DayClass string

const (
	// Admin/customer view classes
	DayPast     DayClass = "past-day"
	DayBlocked  DayClass = "blocked-day"
	DayBusiness DayClass = "business-day"

	// Employee view classes
	DayCompleted    DayClass = "completed-day"
	DayWork         DayClass = "work-day"
	DayBlockedShift DayClass = "blocked-date"
	DayOff          DayClass = "off-day"
)

// DayCell is a single cell of the month grid.
// Leading/trailing cells outside the month are empty placeholders with Date == "".
type DayCell struct {
	Day   int      `json:"day,omitempty"`
	Date  string   `json:"date,omitempty"` // YYYY-MM-DD
	Class DayClass `json:"class,omitempty"`
}

// IsEmpty returns true for placeholder cells outside the month
func (c DayCell) IsEmpty() bool {
	return c.Date == ""
}

// Week is an ordered row of exactly 7 day cells
type Week [7]DayCell
