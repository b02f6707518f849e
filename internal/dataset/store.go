// store.go
//
// An authenticated directory service over read-only staff rosters
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of staffdir.
// staffdir is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// staffdir is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with staffdir.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/localnerve/staffdir/internal/models"
	"github.com/localnerve/staffdir/internal/types"
)

// Source file names under the data directory.
const (
	employeeFile     = "employee_data.csv"
	divisionFile     = "division_staffs.csv"
	propertyFile     = "prop_staffs.csv"
	designFile       = "person_hour_reports.csv"
	opportunityFile  = "opportunity_staffs.csv"
	salesFile        = "sales_staffs.csv"
	seatFile         = "seat_data.csv"
	profileImageFile = "profile_image.json"
)

// LoadReport records per-source row counts and the non-fatal problems
// encountered while loading. A missing file is a warning, a malformed one
// is an error; neither stops the rest of the datasets from loading.
type LoadReport struct {
	Counts   map[string]int `json:"counts"`
	Warnings []string       `json:"warnings,omitempty"`
	Errors   []string       `json:"errors,omitempty"`
}

// Store holds the read-only relations for one service lifetime. All slices
// are loaded once by Load and never mutated afterwards, so handlers read
// them without locking.
type Store struct {
	Employees     []models.Employee
	Memberships   []models.DivisionMembership
	Properties    []models.PropertyAssignment
	Designs       []models.DesignHourReport
	Opportunities []models.OpportunityRecord
	Sales         []models.SalesRecord
	Seats         []models.SeatAssignment
	Images        map[string]string

	Report LoadReport
}

// Load reads every source under dataDir. It never fails: each source that
// cannot be read degrades to an empty relation and is noted in the report.
func Load(dataDir string) *Store {
	s := &Store{
		Images: make(map[string]string),
		Report: LoadReport{Counts: make(map[string]int)},
	}

	for _, r := range s.loadSource(dataDir, employeeFile, "employee roster",
		[]string{"employeeCode", "Email", "displayName"}) {
		s.Employees = append(s.Employees, models.Employee{
			EmployeeCode: r[0], Email: r[1], DisplayName: r[2],
		})
	}
	// Roster order is employeeCode ascending, empty codes last. The sort is
	// stable so duplicate emails later collapse to their first occurrence.
	sort.SliceStable(s.Employees, func(i, j int) bool {
		a, b := s.Employees[i].EmployeeCode, s.Employees[j].EmployeeCode
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})

	for _, r := range s.loadSource(dataDir, divisionFile, "division membership",
		[]string{"Email", "Company", "Division"}) {
		s.Memberships = append(s.Memberships, models.DivisionMembership{
			Email: r[0], Company: r[1], Division: r[2],
		})
	}

	for _, r := range s.loadSource(dataDir, propertyFile, "property assignments",
		[]string{"StaffCode_Prop", "PJCD", "ProjectName"}) {
		s.Properties = append(s.Properties, models.PropertyAssignment{
			StaffCode: r[0], ProjectCode: r[1], ProjectName: r[2],
		})
	}

	for _, r := range s.loadSource(dataDir, designFile, "design hour reports",
		[]string{"email_Design", "PJCD"}) {
		s.Designs = append(s.Designs, models.DesignHourReport{
			Email: r[0], ProjectCode: r[1],
		})
	}

	for _, r := range s.loadSource(dataDir, opportunityFile, "opportunity records",
		[]string{"EMAIL_OPPORTUNITY", "PJCD"}) {
		s.Opportunities = append(s.Opportunities, models.OpportunityRecord{
			Email: r[0], ProjectCode: r[1],
		})
	}

	for _, r := range s.loadSource(dataDir, salesFile, "sales records",
		[]string{"employeeCode", "PJCD"}) {
		s.Sales = append(s.Sales, models.SalesRecord{
			EmployeeCode: r[0], ProjectCode: r[1],
		})
	}

	// Seat rows are deduplicated by full-row identity.
	seen := make(map[models.SeatAssignment]struct{})
	for _, r := range s.loadSource(dataDir, seatFile, "seat assignments",
		[]string{"employeeCode", "seatNumber", "status"}) {
		seat := models.SeatAssignment{EmployeeCode: r[0], SeatNumber: r[1], Status: r[2]}
		if _, dup := seen[seat]; dup {
			continue
		}
		seen[seat] = struct{}{}
		s.Seats = append(s.Seats, seat)
	}

	s.loadImages(dataDir)

	s.Report.Counts["employees"] = len(s.Employees)
	s.Report.Counts["memberships"] = len(s.Memberships)
	s.Report.Counts["properties"] = len(s.Properties)
	s.Report.Counts["designs"] = len(s.Designs)
	s.Report.Counts["opportunities"] = len(s.Opportunities)
	s.Report.Counts["sales"] = len(s.Sales)
	s.Report.Counts["seats"] = len(s.Seats)
	s.Report.Counts["images"] = len(s.Images)

	log.Printf("Loaded datasets from %s: %d employees, %d memberships, %d properties, %d warnings, %d errors",
		dataDir, len(s.Employees), len(s.Memberships), len(s.Properties),
		len(s.Report.Warnings), len(s.Report.Errors))

	return s
}

// loadSource reads one tabular source, converting failures into report
// entries and an empty row set.
func (s *Store) loadSource(dataDir, file, name string, columns []string) [][]string {
	path := filepath.Join(dataDir, file)
	rows, err := readTable(path, columns)
	if err != nil {
		if os.IsNotExist(err) {
			s.Report.Warnings = append(s.Report.Warnings,
				fmt.Sprintf("%s file not found: %s", name, path))
		} else {
			s.Report.Errors = append(s.Report.Errors,
				fmt.Sprintf("failed to load %s: %v", name, err))
		}
		return nil
	}
	return rows
}

// loadImages reads the employeeCode -> photo_path map. Any failure leaves
// the map empty; avatar resolution then always falls back to the generated
// placeholder.
func (s *Store) loadImages(dataDir string) {
	path := filepath.Join(dataDir, profileImageFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		s.Report.Errors = append(s.Report.Errors,
			fmt.Sprintf("failed to load profile images: %v", err))
		return
	}

	var entries types.FlexList[models.ProfileImageEntry]
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.Report.Errors = append(s.Report.Errors,
			fmt.Sprintf("failed to parse profile images %s: %v", path, err))
		return
	}

	for _, entry := range entries.Slice() {
		s.Images[entry.EmployeeCode] = strings.TrimSpace(entry.PhotoPath)
	}
}

// SeatColumns lists the declared seat relation columns. They hold even when
// seat_data.csv is absent, so downstream lookups never miss a column.
func SeatColumns() []string {
	return []string{"employeeCode", "seatNumber", "status"}
}

// ImagePath returns the registered photo path for an employee code.
func (s *Store) ImagePath(employeeCode string) (string, bool) {
	path, ok := s.Images[employeeCode]
	return path, ok
}

// SeatFor returns the seat number and status of the first seat row for an
// employee code, or empty strings when there is none.
func (s *Store) SeatFor(employeeCode string) (string, string) {
	for _, seat := range s.Seats {
		if seat.EmployeeCode == employeeCode {
			return seat.SeatNumber, seat.Status
		}
	}
	return "", ""
}

// EmployeeByEmail returns the first roster row with the given email.
func (s *Store) EmployeeByEmail(email string) (models.Employee, bool) {
	for _, emp := range s.Employees {
		if emp.Email == email {
			return emp, true
		}
	}
	return models.Employee{}, false
}

// ProjectNameByCode resolves a project code to the name on its first
// property assignment row.
func (s *Store) ProjectNameByCode(projectCode string) (string, bool) {
	for _, p := range s.Properties {
		if p.ProjectCode == projectCode {
			return p.ProjectName, true
		}
	}
	return "", false
}

// Companies lists distinct non-empty company names in dataset order.
func (s *Store) Companies() []string {
	var companies []string
	seen := make(map[string]struct{})
	for _, m := range s.Memberships {
		if m.Company == "" {
			continue
		}
		if _, ok := seen[m.Company]; ok {
			continue
		}
		seen[m.Company] = struct{}{}
		companies = append(companies, m.Company)
	}
	return companies
}

// DivisionNames lists distinct non-empty division names, sorted.
func (s *Store) DivisionNames() []string {
	var divisions []string
	seen := make(map[string]struct{})
	for _, m := range s.Memberships {
		if m.Division == "" {
			continue
		}
		if _, ok := seen[m.Division]; ok {
			continue
		}
		seen[m.Division] = struct{}{}
		divisions = append(divisions, m.Division)
	}
	sort.Strings(divisions)
	return divisions
}

// ProjectNames lists distinct non-empty project names, sorted.
func (s *Store) ProjectNames() []string {
	var projects []string
	seen := make(map[string]struct{})
	for _, p := range s.Properties {
		if p.ProjectName == "" {
			continue
		}
		if _, ok := seen[p.ProjectName]; ok {
			continue
		}
		seen[p.ProjectName] = struct{}{}
		projects = append(projects, p.ProjectName)
	}
	sort.Strings(projects)
	return projects
}
