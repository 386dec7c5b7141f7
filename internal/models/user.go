package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of access levels. A caller without a user record is
// a guest; a record without a role field is a plain user.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleGuest:
		return RoleGuest, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     Role               `bson:"role,omitempty" json:"role,omitempty"`
	Password string             `bson:"password,omitempty" json:"-"` // bcrypt hash, optional
}

// EffectiveRole resolves the stored role field. Anything that is not a known
// role is treated as a plain user.
func (u *User) EffectiveRole() Role {
	if u == nil {
		return RoleGuest
	}
	role, err := ParseRole(string(u.Role))
	if err != nil || role == RoleGuest {
		return RoleUser
	}
	return role
}

func (u *User) IsAdmin() bool {
	return u.EffectiveRole() == RoleAdmin
}
