package domain

import (
	"fmt"
	"strconv"
)

// Role is a closed enumeration of the principals the API distinguishes.
// It is serialized as its numeric discriminant (0, 1, 2) both in JSON and
// inside session tokens; any other value is a decode error.
type Role int

const (
	RoleAdmin Role = iota
	RoleModerator
	RoleUser
)

// RoleFromInt validates a raw discriminant read from a token or payload.
func RoleFromInt(n int) (Role, error) {
	if n < int(RoleAdmin) || n > int(RoleUser) {
		return 0, fmt.Errorf("role out of range %d..%d: %d", RoleAdmin, RoleUser, n)
	}
	return Role(n), nil
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleModerator:
		return "moderator"
	case RoleUser:
		return "user"
	default:
		return "unknown"
	}
}

// MarshalJSON emits the numeric discriminant.
func (r Role) MarshalJSON() ([]byte, error) {
	if _, err := RoleFromInt(int(r)); err != nil {
		return nil, err
	}
	return []byte(strconv.Itoa(int(r))), nil
}

// UnmarshalJSON rejects out-of-range discriminants instead of accepting them
// silently.
func (r *Role) UnmarshalJSON(data []byte) error {
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("role must be a number: %w", err)
	}
	role, err := RoleFromInt(n)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// RoleForLogin maps a login name to the role it is granted. "Admin" and
// "Moder" are reserved logins; everyone else is a plain user.
func RoleForLogin(login string) Role {
	switch login {
	case "Admin":
		return RoleAdmin
	case "Moder":
		return RoleModerator
	default:
		return RoleUser
	}
}
