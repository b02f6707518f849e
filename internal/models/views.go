package models

// EmployeeRow is one result row of a directory search, enriched with seat
// information for the result table.
type EmployeeRow struct {
	EmployeeCode string `json:"employeeCode"`
	DisplayName  string `json:"displayName"`
	Email        string `json:"email"`
	SeatNumber   string `json:"seatNumber"`
	Status       string `json:"status"`
}

// PeerRef identifies a co-member of a division, sufficient to pivot the
// profile view to that peer.
type PeerRef struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employeeCode"`
}

// EmployeeRef is the one-slot "currently selected employee" navigation
// state held per session.
type EmployeeRef struct {
	Email        string `json:"email"`
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
}

// Profile is the derived per-employee view: contact fields, affiliation,
// attributed projects and division peers. Projects is absent (not empty)
// when no source relation links the employee to any project.
type Profile struct {
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	EmployeeCode string               `json:"employeeCode"`
	SeatNumber   string               `json:"seatNumber"`
	Status       string               `json:"status"`
	Company      string               `json:"company"`
	Division     string               `json:"division"`
	Projects     []string             `json:"projects,omitempty"`
	Peers        map[string][]PeerRef `json:"peers,omitempty"`
	AvatarURL    string               `json:"avatarUrl"`
}
