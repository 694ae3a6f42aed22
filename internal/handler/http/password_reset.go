// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// forgotPassword answers 202 whether or not the email is registered.
// Only a malformed address or a server failure changes the answer.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ForgotPasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PasswordResetService.RequestPasswordReset(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: messageResetRequested}, http.StatusAccepted)
}

func (h *Handler) verifyResetCode(w http.ResponseWriter, r *http.Request) {
	var request models.VerifyResetCodeRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PasswordResetService.VerifyResetCode(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VerifyResetCodeResponse{Valid: true}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ResetPasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PasswordResetService.ResetPassword(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: messagePasswordResetDone}, http.StatusOK)
}
