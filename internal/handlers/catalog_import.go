package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/utils"
)

// Archive prefixes inside the catalog bucket. Objects under them are never
// re-imported.
const (
	ProcessedPrefix = "processed/"
	FailedPrefix    = "failed/"
	ReportPrefix    = "reports/"
)

// maxReportedErrors caps the errors echoed back per file.
const maxReportedErrors = 10

// ObjectStore is the subset of the S3 service the import needs.
type ObjectStore interface {
	DownloadFile(ctx context.Context, key string) ([]byte, error)
	UploadFile(ctx context.Context, key string, data []byte, contentType string) error
	MoveFile(ctx context.Context, sourceKey, destKey string) error
}

// ProductImporter persists parsed catalog rows.
type ProductImporter interface {
	BulkUpsert(ctx context.Context, products []*models.LoanProduct) (*models.CatalogImportResult, error)
}

// CatalogImportHandler imports catalog CSV files dropped into S3.
type CatalogImportHandler struct {
	objects   func(bucket string) ObjectStore
	importer  ProductImporter
	refresher CatalogRefresher
}

// NewCatalogImportHandler creates an import handler. objects returns a store
// bound to the event's bucket; refresher may be nil.
func NewCatalogImportHandler(objects func(bucket string) ObjectStore, importer ProductImporter, refresher CatalogRefresher) *CatalogImportHandler {
	return &CatalogImportHandler{objects: objects, importer: importer, refresher: refresher}
}

// CatalogImportResponse is the Lambda result for one S3 event.
type CatalogImportResponse struct {
	Message string                        `json:"message"`
	Files   []*models.CatalogImportResult `json:"files"`
}

// Handle processes S3 object-created events for catalog files. A file with
// bad rows is still imported; only a storage or database failure is an error.
func (h *CatalogImportHandler) Handle(ctx context.Context, s3Event events.S3Event) (CatalogImportResponse, error) {
	response := CatalogImportResponse{Files: []*models.CatalogImportResult{}}
	imported := 0

	for _, record := range s3Event.Records {
		bucket := record.S3.Bucket.Name
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			return response, fmt.Errorf("failed to decode S3 key: %w", err)
		}

		if !isCatalogFile(key) {
			utils.Logger.Debug("Skipping non-catalog object", zap.String("key", key))
			continue
		}

		result, err := h.importFile(ctx, h.objects(bucket), key)
		if err != nil {
			return response, err
		}
		response.Files = append(response.Files, result)
		imported += result.UpsertedCount
	}

	if len(response.Files) == 0 {
		response.Message = "No catalog files to process"
		return response, nil
	}

	if imported > 0 && h.refresher != nil {
		if _, err := h.refresher.Refresh(ctx); err != nil {
			utils.Logger.Warn("Failed to refresh catalog after import", zap.Error(err))
		}
	}

	response.Message = fmt.Sprintf("Imported %d products from %d files", imported, len(response.Files))
	return response, nil
}

func (h *CatalogImportHandler) importFile(ctx context.Context, store ObjectStore, key string) (*models.CatalogImportResult, error) {
	batchID := uuid.New().String()
	logger := utils.Logger.With(zap.String("batch_id", batchID), zap.String("key", key))
	logger.Info("Processing catalog file")

	content, err := store.DownloadFile(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog %s: %w", key, err)
	}

	parser := utils.NewCSVParser()
	products, parseErrors := parser.ParseProducts(string(content))

	result := &models.CatalogImportResult{BatchID: batchID, Errors: []string{}}
	if len(products) > 0 {
		upserted, err := h.importer.BulkUpsert(ctx, products)
		if err != nil {
			return nil, fmt.Errorf("failed to import catalog %s: %w", key, err)
		}
		result.TotalRows = upserted.TotalRows
		result.UpsertedCount = upserted.UpsertedCount
		result.FailedCount = upserted.FailedCount
		result.Errors = append(result.Errors, upserted.Errors...)
	}

	for _, e := range parseErrors {
		if errors.Is(e, utils.ErrNoDataRows) {
			continue
		}
		result.TotalRows++
		result.FailedCount++
		result.Errors = append(result.Errors, e.Error())
	}

	logger.Info("Imported catalog file",
		zap.Int("total", result.TotalRows),
		zap.Int("upserted", result.UpsertedCount),
		zap.Int("failed", result.FailedCount),
	)

	h.writeReport(ctx, store, result)

	archive := ProcessedPrefix
	if result.UpsertedCount == 0 {
		archive = FailedPrefix
	}
	if err := store.MoveFile(ctx, key, archive+key); err != nil {
		logger.Warn("Failed to archive catalog file", zap.Error(err))
	}

	if len(result.Errors) > maxReportedErrors {
		result.Errors = result.Errors[:maxReportedErrors]
	}
	return result, nil
}

func (h *CatalogImportHandler) writeReport(ctx context.Context, store ObjectStore, result *models.CatalogImportResult) {
	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return
	}
	if err := store.UploadFile(ctx, ReportPrefix+result.BatchID+".json", body, "application/json"); err != nil {
		utils.Logger.Warn("Failed to upload import report", zap.String("batch_id", result.BatchID), zap.Error(err))
	}
}

func isCatalogFile(key string) bool {
	if strings.HasPrefix(key, ProcessedPrefix) || strings.HasPrefix(key, FailedPrefix) || strings.HasPrefix(key, ReportPrefix) {
		return false
	}
	return strings.EqualFold(path.Ext(key), ".csv")
}
