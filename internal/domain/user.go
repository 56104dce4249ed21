package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// AtLeast reports whether r grants the privileges of minimum.
// Admin > Manager > Employee.
func (r Role) AtLeast(minimum Role) bool {
	rank := map[Role]int{RoleEmployee: 1, RoleManager: 2, RoleAdmin: 3}
	return rank[r] >= rank[minimum]
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
