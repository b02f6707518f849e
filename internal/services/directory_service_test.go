package services

import (
	"testing"

	"github.com/localnerve/staffdir/internal/dataset"
	"github.com/localnerve/staffdir/internal/models"
)

// filterStore builds relations with overlapping and non-overlapping
// company/division sets for composition tests.
func filterStore() *dataset.Store {
	return &dataset.Store{
		Employees: []models.Employee{
			{EmployeeCode: "001", Email: "a@x", DisplayName: "Alice"},
			{EmployeeCode: "002", Email: "b@x", DisplayName: "Bob"},
			{EmployeeCode: "003", Email: "c@x", DisplayName: "Anna"},
			{EmployeeCode: "004", Email: "a@x", DisplayName: "Alice"},
			{EmployeeCode: "005", Email: "d@x", DisplayName: ""},
		},
		Memberships: []models.DivisionMembership{
			{Email: "a@x", Company: "X", Division: "Y"},
			{Email: "b@x", Company: "X", Division: "Z"},
			{Email: "c@x", Company: "W", Division: "Y"},
		},
		Properties: []models.PropertyAssignment{
			{StaffCode: "001", ProjectCode: "10", ProjectName: "Tower A"},
		},
		Designs: []models.DesignHourReport{
			{Email: "c@x", ProjectCode: "10"},
		},
		Sales: []models.SalesRecord{
			{EmployeeCode: "002", ProjectCode: "10"},
		},
		Images: map[string]string{},
	}
}

func TestFilterEmployeesNoPredicates(t *testing.T) {
	rows := FilterEmployees(filterStore(), DirectoryQuery{})

	// Duplicate email a@x collapses to its first (code-sorted) occurrence
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %v", rows)
	}
	if rows[0].EmployeeCode != "001" || rows[0].Email != "a@x" {
		t.Errorf("Expected first row 001/a@x, got %+v", rows[0])
	}
}

func TestFilterEmployeesComposition(t *testing.T) {
	// name, company and division intersect down to Alice alone
	rows := FilterEmployees(filterStore(), DirectoryQuery{
		Name:     "a",
		Company:  "X",
		Division: "Y",
	})

	if len(rows) != 1 || rows[0].DisplayName != "Alice" {
		t.Errorf("Expected only Alice, got %v", rows)
	}
}

func TestFilterEmployeesNameCaseInsensitive(t *testing.T) {
	rows := FilterEmployees(filterStore(), DirectoryQuery{Name: "ALICE"})

	if len(rows) != 1 || rows[0].Email != "a@x" {
		t.Errorf("Expected Alice, got %v", rows)
	}
}

func TestFilterEmployeesNameExcludesEmptyDisplayName(t *testing.T) {
	rows := FilterEmployees(filterStore(), DirectoryQuery{Name: "a"})

	for _, row := range rows {
		if row.DisplayName == "" {
			t.Errorf("Expected no empty displayName rows, got %v", rows)
		}
	}
}

func TestFilterEmployeesAllSentinel(t *testing.T) {
	unfiltered := FilterEmployees(filterStore(), DirectoryQuery{})
	sentinel := FilterEmployees(filterStore(), DirectoryQuery{
		Company:  FilterAll,
		Division: FilterAll,
		Project:  FilterAll,
	})

	if len(sentinel) != len(unfiltered) {
		t.Errorf("Expected 'all' to disable predicates: %d vs %d rows",
			len(sentinel), len(unfiltered))
	}
}

func TestFilterEmployeesByProject(t *testing.T) {
	rows := FilterEmployees(filterStore(), DirectoryQuery{Project: "Tower A"})

	// Alice via asset code, Bob via sales code, Anna via design email
	emails := make(map[string]bool)
	for _, row := range rows {
		emails[row.Email] = true
	}
	for _, want := range []string{"a@x", "b@x", "c@x"} {
		if !emails[want] {
			t.Errorf("Expected %s in project results, got %v", want, rows)
		}
	}
	if len(rows) != 3 {
		t.Errorf("Expected 3 rows, got %v", rows)
	}
}

func TestFilterEmployeesByUnknownProject(t *testing.T) {
	rows := FilterEmployees(filterStore(), DirectoryQuery{Project: "Nowhere"})

	if len(rows) != 0 {
		t.Errorf("Expected no rows for unknown project, got %v", rows)
	}
}
