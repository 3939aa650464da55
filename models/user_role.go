package models

type UserRole string

const (
	UserRoleUser       UserRole = "USER"
	UserRoleManager    UserRole = "MANAGER"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPERADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleUser:       "Employee",
	UserRoleManager:    "Manager",
	UserRoleAdmin:      "Administrator",
	UserRoleSuperAdmin: "Super administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// AtLeast reports whether the role grants the permissions of the given role.
func (r UserRole) AtLeast(required UserRole) bool {
	return roleRank[r] >= roleRank[required]
}

var roleRank = map[UserRole]int{
	UserRoleUser:       1,
	UserRoleManager:    2,
	UserRoleAdmin:      3,
	UserRoleSuperAdmin: 4,
}

const SystemUser = "system"

type UserStatus string

const (
	UserWorkingStatus    UserStatus = "WORKING"
	UserInactiveStatus   UserStatus = "INACTIVE"
	UserTerminatedStatus UserStatus = "TERMINATED"
)

var userStatusHumanName = map[UserStatus]string{
	UserWorkingStatus:    "Working",
	UserInactiveStatus:   "Inactive",
	UserTerminatedStatus: "Terminated",
}

func (s UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
