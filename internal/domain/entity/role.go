package entity

import "strings"

// UserRole represents the role of a user in the system.
type UserRole string

const (
	UserRoleStudent    UserRole = "STUDENT"
	UserRoleTeacher    UserRole = "TEACHER"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

// roleRanks orders roles from least to most privileged.
var roleRanks = map[UserRole]int{
	UserRoleStudent:    1,
	UserRoleTeacher:    2,
	UserRoleAdmin:      3,
	UserRoleSuperAdmin: 4,
}

func DefaultRole() UserRole {
	return UserRoleStudent
}

// AllRoles returns every known role, least privileged first.
func AllRoles() []UserRole {
	return []UserRole{UserRoleStudent, UserRoleTeacher, UserRoleAdmin, UserRoleSuperAdmin}
}

// ParseRole maps a case-insensitive role name to a known role.
func ParseRole(s string) (UserRole, bool) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roleRanks[r]; !ok {
		return "", false
	}
	return r, true
}

// Rank is 0 for unknown roles.
func (r UserRole) Rank() int {
	return roleRanks[r]
}

func (r UserRole) Valid() bool {
	return r.Rank() > 0
}

// AtLeast reports whether r is as privileged as other or more.
func (r UserRole) AtLeast(other UserRole) bool {
	return r.Valid() && r.Rank() >= other.Rank()
}

// Elevated reports whether r grants more than the default role.
func (r UserRole) Elevated() bool {
	return r.Rank() > DefaultRole().Rank()
}

// CanAssignRole reports whether actor may give target to an account.
// Anyone, including an anonymous caller (empty actor), may assign the default role;
// elevated roles can only be handed out by a super admin.
func CanAssignRole(actor, target UserRole) bool {
	if !target.Valid() {
		return false
	}
	if !target.Elevated() {
		return true
	}
	return actor == UserRoleSuperAdmin
}

// CanManage reports whether actor may act on the credentials of an account
// holding target. Nobody manages an account more privileged than their own.
func CanManage(actor, target UserRole) bool {
	return actor.Valid() && actor.AtLeast(target)
}

// RoleSet is an unordered set of acceptable roles.
type RoleSet []UserRole

// Contains reports whether r is in the set. An empty set contains every valid role.
func (s RoleSet) Contains(r UserRole) bool {
	if len(s) == 0 {
		return r.Valid()
	}
	for _, candidate := range s {
		if candidate == r {
			return true
		}
	}
	return false
}

func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}
