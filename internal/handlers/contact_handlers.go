package handlers

import (
	"net/http"
	"strconv"

	"github.com/diagnosis/carnet/internal/domain"
	"github.com/go-chi/chi/v5"
)

// ListContacts returns every contact owned by the caller
func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required", CodeUnauthorized)
		return
	}

	contacts, err := h.contactService.ListContacts(r.Context(), claims.Sub)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if contacts == nil {
		contacts = []domain.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// CreateContact creates a contact owned by the caller
func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required", CodeUnauthorized)
		return
	}

	var req domain.CreateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}

	contact, err := h.contactService.CreateContact(r.Context(), claims.Sub, &req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

// UpdateContact merge-patches a contact owned by the caller
func (h *Handlers) UpdateContact(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required", CodeUnauthorized)
		return
	}

	id, ok := contactID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Contact not found", CodeNotFound)
		return
	}

	var patch domain.ContactPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}

	contact, err := h.contactService.UpdateContact(r.Context(), id, claims.Sub, &patch)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if contact == nil {
		writeError(w, http.StatusNotFound, "Contact not found", CodeNotFound)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

// DeleteContact removes a contact owned by the caller
func (h *Handlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required", CodeUnauthorized)
		return
	}

	id, ok := contactID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Contact not found", CodeNotFound)
		return
	}

	contact, err := h.contactService.DeleteContact(r.Context(), id, claims.Sub)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if contact == nil {
		writeError(w, http.StatusNotFound, "Contact not found", CodeNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Contact deleted",
	})
}

// contactID parses the path id. A malformed id is reported the same way as
// an id that does not exist.
func contactID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
