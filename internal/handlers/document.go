package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/events"
	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/middleware"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/pdf"
	"github.com/limovia/fleetcrm/internal/schedule"
	"github.com/limovia/fleetcrm/internal/validation"
	log "github.com/sirupsen/logrus"
)

// numberPrefixes maps document kinds to the short codes embedded in their
// numbers.
var numberPrefixes = map[models.DocumentKind]string{
	models.KindInvoice:    "FAC",
	models.KindQuote:      "DEV",
	models.KindProforma:   "PRO",
	models.KindCreditNote: "AVR",
}

// DocumentHandler handles invoices, quotes, proformas and credit notes.
type DocumentHandler struct {
	documents db.DocumentCollection
	companies db.CompanyCollection
	notifier  *events.Notifier
}

// NewDocumentHandler creates a billing document handler.
func NewDocumentHandler(documents db.DocumentCollection, companies db.CompanyCollection, notifier *events.Notifier) *DocumentHandler {
	return &DocumentHandler{documents: documents, companies: companies, notifier: notifier}
}

// List returns documents of the requested kind, paginated.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := models.DocumentKind(r.URL.Query().Get("kind"))
	if kind != "" && !models.IsValidDocumentKind(kind) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid document kind", nil)
		return
	}

	docs, err := h.documents.FindDocuments(r.Context(), kind)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	page := queryInt(r, "page", 1)
	size := queryInt(r, "page_size", 10)
	httpx.JSON(w, http.StatusOK, schedule.Paginate(docs, page, size))
}

// Get returns one document.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documents.FindDocumentByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, doc)
}

// Create validates and inserts a document. A missing number is sequenced
// from the per-kind count, a missing issue date defaults to today.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if !decodeBody(w, r, &doc) {
		return
	}
	lang := requestLang(r)

	if !models.IsValidDocumentKind(doc.Kind) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid document kind", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("client_name", doc.ClientName, v)
	if len(doc.Items) == 0 {
		v["items"] = "required"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	if doc.IssueDate == "" {
		doc.IssueDate = schedule.NormalizeTime(time.Now())
	} else if normalized, err := schedule.NormalizeDate(doc.IssueDate); err == nil {
		doc.IssueDate = normalized
	} else {
		httpx.JSONError(w, http.StatusBadRequest, "invalid issue date", nil)
		return
	}
	if doc.Number == "" {
		number, err := h.nextNumber(r, doc.Kind)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		doc.Number = number
	}
	if doc.Status == "" {
		doc.Status = models.DocumentDraft
	}

	id, err := h.documents.InsertDocument(r.Context(), doc)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityCreated, string(doc.Kind), id)
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id, "number": doc.Number})
}

// Update overwrites a document's fields.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if !decodeBody(w, r, &doc) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("client_name", doc.ClientName, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	id := r.PathValue("id")
	if err := h.documents.UpdateDocument(r.Context(), id, doc); err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityUpdated, string(doc.Kind), id)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a document.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.documents.DeleteDocument(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityDeleted, "document", id)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// PDF streams the rendered document as a download named from its number
// and issue date.
func (h *DocumentHandler) PDF(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documents.FindDocumentByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	// The first company on record supplies the letterhead; rendering
	// proceeds without one.
	var company *models.Company
	if companies, err := h.companies.FindCompanies(r.Context()); err == nil && len(companies) > 0 {
		company = &companies[0]
	} else if err != nil {
		log.WithError(err).Warn("failed to load company for letterhead")
	}

	var buf bytes.Buffer
	if err := pdf.RenderDocument(&buf, doc, company, requestLang(r)); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename()+`"`)
	_, _ = w.Write(buf.Bytes())
}

// nextNumber sequences document numbers per kind and year, e.g.
// FAC-2026-0012.
func (h *DocumentHandler) nextNumber(r *http.Request, kind models.DocumentKind) (string, error) {
	count, err := h.documents.CountByKind(r.Context(), kind)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%04d", numberPrefixes[kind], time.Now().Year(), count+1), nil
}

func (h *DocumentHandler) notifyChange(r *http.Request, eventType events.EventType, kind, id string) {
	actor := ""
	if claims, ok := middleware.GetUserFromContext(r.Context()); ok {
		actor = claims.Username
	}
	h.notifier.EntityChanged(eventType, kind, id, actor)
}
