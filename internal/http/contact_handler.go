package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mueed25/new-nahcon/internal/repository"
	"github.com/mueed25/new-nahcon/internal/service"

	"go.uber.org/zap"
)

// ContactHandler serves the contact directory endpoints.
type ContactHandler struct {
	contacts *service.ContactService
	env      string
	logger   *zap.Logger
}

func NewContactHandler(contacts *service.ContactService, env string, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		env:      env,
		logger:   logger,
	}
}

// listRequest parses the shared filter/pagination params. Non-numeric
// pagination falls back to the default; the service clamps into range.
func listRequest(r *http.Request, defaultLimit int) service.ListContactsRequest {
	q := r.URL.Query()
	return service.ListContactsRequest{
		Search:   q.Get("search"),
		Province: q.Get("province"),
		State:    q.Get("state"),
		Location: q.Get("location"),
		Limit:    parseInt(q.Get("limit"), defaultLimit),
		Offset:   parseInt(q.Get("offset"), 0),
	}
}

// ListContacts: GET /api/contacts
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.contacts.ListContacts(r.Context(), listRequest(r, service.DefaultLimit))
	if err != nil {
		h.serverError(w, "Failed to fetch contacts", err)
		return
	}
	writeJSON(w, http.StatusOK, OkList(resp.Contacts, resp.Pagination))
}

// GetContact: GET /api/contacts/{id}
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Contact id must be numeric"))
		return
	}

	contact, err := h.contacts.GetContact(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, Fail("Contact not found"))
			return
		}
		h.serverError(w, "Failed to fetch contact", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(contact))
}

// ListLocations: GET /api/locations
func (h *ContactHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.contacts.ListLocations(r.Context())
	if err != nil {
		h.serverError(w, "Failed to fetch locations", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(locations))
}

// ListProvinces: GET /api/provinces
func (h *ContactHandler) ListProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.contacts.ListProvinces(r.Context())
	if err != nil {
		h.serverError(w, "Failed to fetch provinces", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(provinces))
}

// ListStates: GET /api/states
func (h *ContactHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.contacts.ListStates(r.Context())
	if err != nil {
		h.serverError(w, "Failed to fetch states", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(states))
}

// ExportContacts: GET /api/contacts/export — same filter contract as the
// list endpoint, with a larger default page, rendered as an xlsx download.
func (h *ContactHandler) ExportContacts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.contacts.ListContacts(r.Context(), listRequest(r, service.DefaultExportLimit))
	if err != nil {
		h.serverError(w, "Failed to export contacts", err)
		return
	}

	data, err := GenerateContactExport(resp.Contacts)
	if err != nil {
		h.serverError(w, "Failed to generate export file", err)
		return
	}

	filename := fmt.Sprintf("contacts-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *ContactHandler) serverError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	if h.env != "production" {
		writeJSON(w, http.StatusInternalServerError, FailWithDetail(msg, err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, Fail(msg))
}
