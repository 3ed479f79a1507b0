package model

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type User struct {
	UserID     string    `firestore:"userid,omitempty"`
	FullName   string    `firestore:"fullName,omitempty"`
	Email      string    `firestore:"email,omitempty"`
	Password   string    `firestore:"password,omitempty"`
	Role       Role      `firestore:"role,omitempty"`
	Department string    `firestore:"department,omitempty"`
	CreatedAt  time.Time `firestore:"createdAt,omitempty"`
}

func UserFromDoc(doc map[string]interface{}, id string) User {
	return User{
		UserID:     id,
		FullName:   DocString(doc, "fullName"),
		Email:      DocString(doc, "email"),
		Password:   DocString(doc, "password"),
		Role:       Role(DocString(doc, "role")),
		Department: DocString(doc, "department"),
		CreatedAt:  DocTime(doc, "createdAt"),
	}
}

func (u User) ToDoc() map[string]interface{} {
	return map[string]interface{}{
		"userid":     u.UserID,
		"fullName":   u.FullName,
		"email":      u.Email,
		"password":   u.Password,
		"role":       string(u.Role),
		"department": u.Department,
		"createdAt":  u.CreatedAt,
	}
}

func (u User) Identity() Identity {
	return Identity{UID: u.UserID, Name: u.FullName, Email: u.Email}
}
