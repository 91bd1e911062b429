package handlers

import (
	"net/http"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/service"
	"dental_clinic_api/internal/webutil"
)

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

// Submit accepts a contact-form message from the public site.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ContactRequest
	if !bindRequest(w, r, &req) {
		return
	}

	if _, err := h.service.Submit(r.Context(), &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "Thank you for your message. We will get back to you soon.",
	}, logger)
}

// List returns all contact messages. Admin only.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	msgs, err := h.service.List(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"messages": msgs,
	}, logger)
}
