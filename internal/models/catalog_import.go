package models

// CatalogImportResult summarises one catalog file import.
type CatalogImportResult struct {
	BatchID       string   `json:"batch_id"`
	TotalRows     int      `json:"total_rows"`
	UpsertedCount int      `json:"upserted_count"`
	FailedCount   int      `json:"failed_count"`
	Errors        []string `json:"errors,omitempty"`
}
