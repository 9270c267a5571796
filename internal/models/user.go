package models

// UserRole distinguishes teacher and student views of the application.
type UserRole string

// Known user roles.
const (
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User identifies the person working in the current session. There is no
// account system; the identity is best-effort and defaults to anonymous.
type User struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

// Anonymous is the placeholder identity used when no user is set.
func Anonymous() User {
	return User{ID: "anonymous", Name: "Anonymous Student", Role: RoleStudent}
}
