package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/services/recommender"
	"loan-recommendation-engine/internal/utils"
)

// CatalogRefresher reloads the catalog from its system of record.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (*recommender.Catalog, error)
}

// CatalogHandler serves the product listing and the refresh endpoint.
type CatalogHandler struct {
	source    recommender.CatalogSource
	refresher CatalogRefresher
}

// NewCatalogHandler creates a catalog handler. refresher may be nil, in
// which case refresh requests are rejected.
func NewCatalogHandler(source recommender.CatalogSource, refresher CatalogRefresher) *CatalogHandler {
	return &CatalogHandler{source: source, refresher: refresher}
}

// CatalogListing is the body of GET /api/products.
type CatalogListing struct {
	Count    int                   `json:"count"`
	BuiltAt  string                `json:"built_at"`
	Products []*models.LoanProduct `json:"products"`
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, requestID, "Use GET")
		return
	}

	catalog, err := h.source.Catalog(r.Context())
	if err != nil {
		utils.Logger.Error("Failed to load catalog", zap.String("request_id", requestID), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, requestID, "Loan catalog is unavailable")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success:   true,
		RequestID: requestID,
		Data: CatalogListing{
			Count:    catalog.Len(),
			BuiltAt:  catalog.BuiltAt().UTC().Format(time.RFC3339),
			Products: catalog.Products(),
		},
	})
}

// Refresh handles POST /api/catalog/refresh.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, requestID, "Use POST")
		return
	}
	if h.refresher == nil {
		writeError(w, http.StatusNotImplemented, requestID, "Catalog refresh is not configured")
		return
	}

	catalog, err := h.refresher.Refresh(r.Context())
	if err != nil {
		utils.Logger.Error("Catalog refresh failed", zap.String("request_id", requestID), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, requestID, "Catalog refresh failed")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success:   true,
		Message:   "Catalog refreshed",
		RequestID: requestID,
		Data:      map[string]int{"count": catalog.Len()},
	})
}
