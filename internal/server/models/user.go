// Package models defines the server-side data models persisted in the database.
package models

import (
	"fmt"
	"time"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole converts raw input into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManager:
		return RoleManager, nil
	case RoleEmployee:
		return RoleEmployee, nil
	default:
		return "", fmt.Errorf("invalid role %q", s)
	}
}

// User is a registered manager or employee.
//
// ManagerID links an employee to their manager by the manager's stable id;
// it is nil for managers. Manager is populated by lookups that join the
// manager row and is never persisted directly.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash []byte
	Role         Role
	ManagerID    *int64
	Manager      *ManagerSummary
	CreatedAt    time.Time
}

func (u *User) IsManager() bool  { return u.Role == RoleManager }
func (u *User) IsEmployee() bool { return u.Role == RoleEmployee }

// ManagedBy reports whether u is an employee reporting to managerID.
func (u *User) ManagedBy(managerID int64) bool {
	return u.IsEmployee() && u.ManagerID != nil && *u.ManagerID == managerID
}

// ManagerSummary is the public projection of a manager.
type ManagerSummary struct {
	ID    int64
	Name  string
	Email string
}
