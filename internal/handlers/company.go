package handlers

import (
	"net/http"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/validation"
)

// CompanyHandler handles company and brand settings. The dashboard edits
// both on one screen but they stay separate collections.
type CompanyHandler struct {
	companies db.CompanyCollection
	brands    db.BrandCollection
}

// NewCompanyHandler creates a company/brand handler.
func NewCompanyHandler(companies db.CompanyCollection, brands db.BrandCollection) *CompanyHandler {
	return &CompanyHandler{companies: companies, brands: brands}
}

// ListCompanies returns all companies.
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.FindCompanies(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, companies)
}

// CreateCompany inserts a company.
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if !decodeBody(w, r, &company) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("name", company.Name, v)
	validation.Email("email", company.Email, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	id, err := h.companies.InsertCompany(r.Context(), company)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateCompany overwrites a company's fields.
func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if !decodeBody(w, r, &company) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("name", company.Name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	id := r.PathValue("id")
	if err := h.companies.UpdateCompany(r.Context(), id, company); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// DeleteCompany removes a company.
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.companies.DeleteCompany(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// ListBrands returns all brands.
func (h *CompanyHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brands.FindBrands(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, brands)
}

// CreateBrand inserts a brand.
func (h *CompanyHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var brand models.Brand
	if !decodeBody(w, r, &brand) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("name", brand.Name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}
	if brand.Status == "" {
		brand.Status = "active"
	}

	id, err := h.brands.InsertBrand(r.Context(), brand)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateBrand overwrites a brand's fields.
func (h *CompanyHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	var brand models.Brand
	if !decodeBody(w, r, &brand) {
		return
	}

	id := r.PathValue("id")
	if err := h.brands.UpdateBrand(r.Context(), id, brand); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// DeleteBrand removes a brand.
func (h *CompanyHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.brands.DeleteBrand(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}
