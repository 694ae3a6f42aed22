package models

// MessageResponse is a generic informational body.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the {"detail": ...} body of every error response.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// VerifyResetCodeResponse is returned by POST /verify-otp on success.
type VerifyResetCodeResponse struct {
	Valid bool `json:"valid"`
}
