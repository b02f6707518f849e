package models

// Employee is one row of the employee roster (employee_data.csv).
// Email is the display-uniqueness and join key; EmployeeCode is the sort
// key and may be empty.
type Employee struct {
	EmployeeCode string
	Email        string
	DisplayName  string
}

// DivisionMembership is one row of division_staffs.csv. Many-to-many: an
// employee may appear under multiple companies and divisions.
type DivisionMembership struct {
	Email    string
	Company  string
	Division string
}

// PropertyAssignment is one row of prop_staffs.csv, linking an employee
// code (StaffCode_Prop) to a project code (PJCD) and its name.
type PropertyAssignment struct {
	StaffCode   string
	ProjectCode string
	ProjectName string
}

// DesignHourReport is one row of person_hour_reports.csv, keyed by the
// reporting employee's email (email_Design).
type DesignHourReport struct {
	Email       string
	ProjectCode string
}

// OpportunityRecord is one row of opportunity_staffs.csv, keyed by
// EMAIL_OPPORTUNITY.
type OpportunityRecord struct {
	Email       string
	ProjectCode string
}

// SalesRecord is one row of sales_staffs.csv, keyed by employee code.
type SalesRecord struct {
	EmployeeCode string
	ProjectCode  string
}

// SeatAssignment is one row of seat_data.csv. Seat number and status are
// opaque display strings.
type SeatAssignment struct {
	EmployeeCode string
	SeatNumber   string
	Status       string
}

// ProfileImageEntry is one entry of profile_image.json.
type ProfileImageEntry struct {
	EmployeeCode string `json:"employeeCode"`
	PhotoPath    string `json:"photo_path"`
}
