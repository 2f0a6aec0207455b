package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-recommendation-engine/internal/handlers"
	"loan-recommendation-engine/internal/models"
)

type memoryStore struct {
	objects map[string][]byte
	uploads map[string][]byte
	moves   map[string]string
}

func newMemoryStore(objects map[string]string) *memoryStore {
	s := &memoryStore{
		objects: map[string][]byte{},
		uploads: map[string][]byte{},
		moves:   map[string]string{},
	}
	for k, v := range objects {
		s.objects[k] = []byte(v)
	}
	return s
}

func (s *memoryStore) DownloadFile(_ context.Context, key string) ([]byte, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return data, nil
}

func (s *memoryStore) UploadFile(_ context.Context, key string, data []byte, _ string) error {
	s.uploads[key] = data
	return nil
}

func (s *memoryStore) MoveFile(_ context.Context, src, dst string) error {
	s.moves[src] = dst
	return nil
}

type recordingImporter struct {
	products []*models.LoanProduct
	err      error
}

func (r *recordingImporter) BulkUpsert(_ context.Context, products []*models.LoanProduct) (*models.CatalogImportResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.products = append(r.products, products...)
	return &models.CatalogImportResult{TotalRows: len(products), UpsertedCount: len(products), Errors: []string{}}, nil
}

func s3Event(bucket string, keys ...string) events.S3Event {
	var event events.S3Event
	for _, k := range keys {
		var record events.S3EventRecord
		record.S3.Bucket.Name = bucket
		record.S3.Object.Key = k
		event.Records = append(event.Records, record)
	}
	return event
}

const catalogCSV = `lender_name,product_name,category,rate_range,rate_types
Test Bank,Import Loan A,collateral-loan,3.0% ~ 4.0%,fixed
Test Bank,Import Loan B,lease-deposit-loan,3.2% ~ 4.2%,variable|fixed
Test Bank,Broken Loan,collateral-loan,3.0%,teaser`

func TestCatalogImportHandler_ImportsAndArchives(t *testing.T) {
	store := newMemoryStore(map[string]string{"uploads/catalog 2026.csv": catalogCSV})
	importer := &recordingImporter{}
	refresher := &countingRefresher{}

	var bucketSeen string
	h := handlers.NewCatalogImportHandler(func(bucket string) handlers.ObjectStore {
		bucketSeen = bucket
		return store
	}, importer, refresher)

	resp, err := h.Handle(context.Background(), s3Event("loan-catalog", "uploads/catalog+2026.csv"))
	require.NoError(t, err)

	assert.Equal(t, "loan-catalog", bucketSeen)
	require.Len(t, resp.Files, 1)
	file := resp.Files[0]
	assert.NotEmpty(t, file.BatchID)
	assert.Equal(t, 3, file.TotalRows)
	assert.Equal(t, 2, file.UpsertedCount)
	assert.Equal(t, 1, file.FailedCount)
	require.Len(t, file.Errors, 1)
	assert.Contains(t, file.Errors[0], "line 4")

	require.Len(t, importer.products, 2)
	assert.Equal(t, "Import Loan B", importer.products[1].ProductName)
	assert.Equal(t, []models.RateType{models.RateTypeVariable, models.RateTypeFixed}, importer.products[1].RateTypes)

	assert.Equal(t, "processed/uploads/catalog 2026.csv", store.moves["uploads/catalog 2026.csv"])
	assert.Contains(t, store.uploads, "reports/"+file.BatchID+".json")
	assert.Equal(t, 1, refresher.calls)
}

func TestCatalogImportHandler_NothingValidGoesToFailed(t *testing.T) {
	store := newMemoryStore(map[string]string{"bad.csv": "lender_name,rate\nBank,3%\n"})
	importer := &recordingImporter{}
	refresher := &countingRefresher{}
	h := handlers.NewCatalogImportHandler(func(string) handlers.ObjectStore { return store }, importer, refresher)

	resp, err := h.Handle(context.Background(), s3Event("b", "bad.csv"))
	require.NoError(t, err)
	require.Len(t, resp.Files, 1)
	assert.Zero(t, resp.Files[0].UpsertedCount)
	assert.NotEmpty(t, resp.Files[0].Errors)
	assert.Empty(t, importer.products)
	assert.Equal(t, "failed/bad.csv", store.moves["bad.csv"])
	assert.Zero(t, refresher.calls)
}

func TestCatalogImportHandler_SkipsArchivedAndNonCSV(t *testing.T) {
	store := newMemoryStore(nil)
	h := handlers.NewCatalogImportHandler(func(string) handlers.ObjectStore { return store }, &recordingImporter{}, nil)

	resp, err := h.Handle(context.Background(), s3Event("b", "processed/old.csv", "reports/x.json", "notes.txt"))
	require.NoError(t, err)
	assert.Empty(t, resp.Files)
	assert.Equal(t, "No catalog files to process", resp.Message)
}

func TestCatalogImportHandler_DatabaseFailure(t *testing.T) {
	store := newMemoryStore(map[string]string{"c.csv": catalogCSV})
	h := handlers.NewCatalogImportHandler(func(string) handlers.ObjectStore { return store },
		&recordingImporter{err: errors.New("connection refused")}, nil)

	_, err := h.Handle(context.Background(), s3Event("b", "c.csv"))
	require.Error(t, err)
	assert.Empty(t, store.moves, "file stays in place for a retry")
}
