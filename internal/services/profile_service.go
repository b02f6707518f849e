// profile_service.go
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

package services

import (
	"log"
	"sort"
	"strings"

	"github.com/localnerve/staffdir/internal/dataset"
	"github.com/localnerve/staffdir/internal/models"
)

// AffiliationPlaceholder renders when an email has no division membership
// rows. It is a literal display value, never an empty string.
const AffiliationPlaceholder = "no information"

// Provenance labels appended to project names in a profile.
const (
	labelAsset            = "asset"
	labelDesign           = "design"
	labelOpportunity      = "opportunity"
	labelSales            = "sales"
	labelOpportunitySales = "opportunity+sales"
)

// ResolveAffiliation returns the newline-joined distinct company and
// division names for an email. Values keep first-seen order; they are
// deduplicated but deliberately not sorted.
func ResolveAffiliation(store *dataset.Store, email string) (string, string) {
	var companies, divisions []string
	seenCompany := make(map[string]struct{})
	seenDivision := make(map[string]struct{})

	for _, m := range store.Memberships {
		if m.Email != email {
			continue
		}
		if m.Company != "" {
			if _, ok := seenCompany[m.Company]; !ok {
				seenCompany[m.Company] = struct{}{}
				companies = append(companies, m.Company)
			}
		}
		if m.Division != "" {
			if _, ok := seenDivision[m.Division]; !ok {
				seenDivision[m.Division] = struct{}{}
				divisions = append(divisions, m.Division)
			}
		}
	}

	company := strings.Join(companies, "\n")
	if company == "" {
		company = AffiliationPlaceholder
	}
	division := strings.Join(divisions, "\n")
	if division == "" {
		division = AffiliationPlaceholder
	}
	return company, division
}

// AttributeProjects computes the labeled project list for an employee from
// the four provenance sources. The second return value is false when no
// source links the employee to any project; callers then omit the project
// section entirely rather than rendering an empty one.
//
// Passes run in a fixed order:
//  1. every property assignment for the employee code emits "name asset",
//     duplicates preserved;
//  2. every design hour report for the email resolves its project code to
//     the first matching property row and emits "name design";
//  3. opportunity and sales joins are merged with set algebra so a project
//     reachable through both sources appears once, as "name
//     opportunity+sales", instead of twice.
//
// The set-algebra groups are sorted for deterministic output; the contract
// only fixes membership within that block, not order.
func AttributeProjects(store *dataset.Store, employeeCode, email string) ([]string, bool) {
	var projects []string

	for _, p := range store.Properties {
		if p.StaffCode == employeeCode {
			projects = append(projects, p.ProjectName+" "+labelAsset)
		}
	}

	for _, d := range store.Designs {
		if d.Email != email {
			continue
		}
		if name, ok := store.ProjectNameByCode(d.ProjectCode); ok {
			projects = append(projects, name+" "+labelDesign)
		}
	}

	opportunity := joinedProjectNames(store, opportunityCodes(store, email))
	sales := joinedProjectNames(store, salesCodes(store, employeeCode))

	projects = append(projects, labelGroup(intersect(opportunity, sales), labelOpportunitySales)...)
	projects = append(projects, labelGroup(subtract(opportunity, sales), labelOpportunity)...)
	projects = append(projects, labelGroup(subtract(sales, opportunity), labelSales)...)

	if len(projects) == 0 {
		return nil, false
	}
	return projects, true
}

// PeersOf maps each division the employee belongs to onto its other
// members, enriched from the roster. Divisions without any surviving peer
// are omitted. The employeeCode parameter identifies the subject alongside
// the email; exclusion itself is by email, the membership key.
func PeersOf(store *dataset.Store, email, employeeCode string) map[string][]models.PeerRef {
	var divisions []string
	seenDivision := make(map[string]struct{})
	for _, m := range store.Memberships {
		if m.Email != email || m.Division == "" {
			continue
		}
		if _, ok := seenDivision[m.Division]; ok {
			continue
		}
		seenDivision[m.Division] = struct{}{}
		divisions = append(divisions, m.Division)
	}

	result := make(map[string][]models.PeerRef)
	for _, division := range divisions {
		var peers []models.PeerRef
		seen := make(map[string]struct{})
		for _, m := range store.Memberships {
			if m.Division != division {
				continue
			}
			if _, ok := seen[m.Email]; ok {
				continue
			}
			seen[m.Email] = struct{}{}
			if m.Email == email {
				continue
			}
			peer, ok := store.EmployeeByEmail(m.Email)
			if !ok {
				// Membership rows should always resolve against the roster;
				// skip rather than fail the whole profile.
				log.Printf("peer %s of division %s has no roster row, skipping", m.Email, division)
				continue
			}
			peers = append(peers, models.PeerRef{
				Name:         peer.DisplayName,
				Email:        m.Email,
				EmployeeCode: peer.EmployeeCode,
			})
		}
		if len(peers) > 0 {
			result[division] = peers
		}
	}
	return result
}

// BuildProfile runs the full per-employee pipeline: affiliation, project
// attribution, peer network, seat and avatar. Selecting a peer reruns this
// for the new subject.
func BuildProfile(store *dataset.Store, avatarBase string, employee models.Employee) models.Profile {
	company, division := ResolveAffiliation(store, employee.Email)
	projects, _ := AttributeProjects(store, employee.EmployeeCode, employee.Email)
	peers := PeersOf(store, employee.Email, employee.EmployeeCode)
	seatNumber, status := store.SeatFor(employee.EmployeeCode)

	profile := models.Profile{
		Name:         employee.DisplayName,
		Email:        employee.Email,
		EmployeeCode: employee.EmployeeCode,
		SeatNumber:   seatNumber,
		Status:       status,
		Company:      company,
		Division:     division,
		Projects:     projects,
		AvatarURL:    AvatarURL(store, avatarBase, employee.EmployeeCode),
	}
	if len(peers) > 0 {
		profile.Peers = peers
	}
	return profile
}

// opportunityCodes collects the project codes of opportunity records for an
// email.
func opportunityCodes(store *dataset.Store, email string) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, o := range store.Opportunities {
		if o.Email == email {
			codes[o.ProjectCode] = struct{}{}
		}
	}
	return codes
}

// salesCodes collects the project codes of sales records for an employee
// code.
func salesCodes(store *dataset.Store, employeeCode string) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, sale := range store.Sales {
		if sale.EmployeeCode == employeeCode {
			codes[sale.ProjectCode] = struct{}{}
		}
	}
	return codes
}

// joinedProjectNames resolves a set of project codes through the property
// relation into the set of project names, over all matching rows.
func joinedProjectNames(store *dataset.Store, codes map[string]struct{}) map[string]struct{} {
	names := make(map[string]struct{})
	for _, p := range store.Properties {
		if _, ok := codes[p.ProjectCode]; ok {
			names[p.ProjectName] = struct{}{}
		}
	}
	return names
}

// labelGroup renders a name set with one label, sorted.
func labelGroup(names map[string]struct{}, label string) []string {
	group := make([]string, 0, len(names))
	for name := range names {
		group = append(group, name+" "+label)
	}
	sort.Strings(group)
	return group
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for name := range a {
		if _, ok := b[name]; ok {
			out[name] = struct{}{}
		}
	}
	return out
}

func subtract(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for name := range a {
		if _, ok := b[name]; !ok {
			out[name] = struct{}{}
		}
	}
	return out
}
