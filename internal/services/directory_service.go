package services

import (
	"strings"

	"github.com/localnerve/staffdir/internal/dataset"
	"github.com/localnerve/staffdir/internal/models"
)

// FilterAll is the dropdown sentinel that disables a predicate, as does an
// empty value.
const FilterAll = "all"

// DirectoryQuery holds the search predicates. They compose conjunctively.
type DirectoryQuery struct {
	Name     string
	Company  string
	Division string
	Project  string
}

// FilterEmployees applies the query to the code-sorted roster and returns
// matching rows, deduplicated by email with the first occurrence kept.
func FilterEmployees(store *dataset.Store, query DirectoryQuery) []models.EmployeeRow {
	companyEmails := membershipEmails(store, query.Company, func(m models.DivisionMembership) string {
		return m.Company
	})
	divisionEmails := membershipEmails(store, query.Division, func(m models.DivisionMembership) string {
		return m.Division
	})
	projectEmails, projectCodes := projectMembers(store, query.Project)
	projectActive := query.Project != "" && query.Project != FilterAll

	name := strings.ToLower(query.Name)
	seen := make(map[string]struct{})
	var rows []models.EmployeeRow
	for _, employee := range store.Employees {
		if name != "" {
			if employee.DisplayName == "" ||
				!strings.Contains(strings.ToLower(employee.DisplayName), name) {
				continue
			}
		}
		if companyEmails != nil {
			if _, ok := companyEmails[employee.Email]; !ok {
				continue
			}
		}
		if divisionEmails != nil {
			if _, ok := divisionEmails[employee.Email]; !ok {
				continue
			}
		}
		if projectActive {
			_, byEmail := projectEmails[employee.Email]
			_, byCode := projectCodes[employee.EmployeeCode]
			if !byEmail && !byCode {
				continue
			}
		}
		if _, ok := seen[employee.Email]; ok {
			continue
		}
		seen[employee.Email] = struct{}{}

		seatNumber, status := store.SeatFor(employee.EmployeeCode)
		rows = append(rows, models.EmployeeRow{
			EmployeeCode: employee.EmployeeCode,
			DisplayName:  employee.DisplayName,
			Email:        employee.Email,
			SeatNumber:   seatNumber,
			Status:       status,
		})
	}
	return rows
}

// membershipEmails collects the emails appearing in membership rows whose
// selected field equals value. A nil result means the predicate is
// disabled.
func membershipEmails(store *dataset.Store, value string, field func(models.DivisionMembership) string) map[string]struct{} {
	if value == "" || value == FilterAll {
		return nil
	}
	emails := make(map[string]struct{})
	for _, m := range store.Memberships {
		if field(m) == value {
			emails[m.Email] = struct{}{}
		}
	}
	return emails
}

// projectMembers collects the emails and employee codes attributable to a
// project through any of the four provenance joins, mirroring the
// attribution engine: assets by staff code on the named rows, design via
// the first-match code resolution, opportunity and sales via any row whose
// code names the project.
func projectMembers(store *dataset.Store, project string) (map[string]struct{}, map[string]struct{}) {
	if project == "" || project == FilterAll {
		return nil, nil
	}

	emails := make(map[string]struct{})
	codes := make(map[string]struct{})

	namedCodes := make(map[string]struct{})
	for _, p := range store.Properties {
		if p.ProjectName != project {
			continue
		}
		namedCodes[p.ProjectCode] = struct{}{}
		codes[p.StaffCode] = struct{}{}
	}

	for _, d := range store.Designs {
		if name, ok := store.ProjectNameByCode(d.ProjectCode); ok && name == project {
			emails[d.Email] = struct{}{}
		}
	}
	for _, o := range store.Opportunities {
		if _, ok := namedCodes[o.ProjectCode]; ok {
			emails[o.Email] = struct{}{}
		}
	}
	for _, sale := range store.Sales {
		if _, ok := namedCodes[sale.ProjectCode]; ok {
			codes[sale.EmployeeCode] = struct{}{}
		}
	}

	return emails, codes
}
