package domain

const (
	UserRolePatient = "patient"
	UserRoleDoctor  = "doctor"
	UserRoleAdmin   = "admin"
)

// User es el registro de perfil que la app guardaba como arogyaai_user.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
