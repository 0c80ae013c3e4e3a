package change_password

import "github.com/agendei-app/agendei-service/pkg/password"

// ChangePasswordRequest carries the current and the replacement password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// WeakPasswordResponse explains which strength criteria the new password
// missed, mirroring the live checklist the admin panel renders.
type WeakPasswordResponse struct {
	Error    string            `json:"error"`
	Criteria password.Criteria `json:"criteria"`
}
