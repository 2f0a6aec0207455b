package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"loan-recommendation-engine/internal/models"
)

// CSVParser errors
var (
	ErrEmptyCSV       = errors.New("CSV content is empty")
	ErrMissingColumns = errors.New("missing required columns")
	ErrNoDataRows     = errors.New("CSV file contains no valid product rows")
	ErrInvalidBool    = errors.New("invalid boolean value")
)

// ListSeparator splits multi-valued catalog cells.
const ListSeparator = "|"

// RequiredColumns defines the columns that must be present in a catalog CSV.
var RequiredColumns = []string{
	"lender_name",
	"product_name",
	"category",
}

// ColumnAliases maps alternative column names to standard names.
var ColumnAliases = map[string]string{
	"lender":    "lender_name",
	"bank":      "lender_name",
	"bank_name": "lender_name",
	"은행":        "lender_name",
	"금융기관":      "lender_name",

	"product": "product_name",
	"name":    "product_name",
	"상품명":     "product_name",

	"loan_type": "category",
	"type":      "category",
	"대출종류":      "category",

	"rate":          "rate_range",
	"interest_rate": "rate_range",
	"금리":            "rate_range",

	"max_amount": "max_amount_text",
	"limit":      "max_amount_text",
	"한도":         "max_amount_text",

	"term":   "loan_term",
	"period": "loan_term",
	"기간":     "loan_term",

	"age":            "qual_age",
	"연령":             "qual_age",
	"home_ownership": "qual_home_ownership",
	"housing":        "qual_home_ownership",
	"주택소유":           "qual_home_ownership",
	"income":         "qual_income",
	"소득":             "qual_income",
	"credit_score":   "qual_credit_score",
	"credit":         "qual_credit_score",
	"신용점수":           "qual_credit_score",

	"documents": "required_documents",
	"필요서류":      "required_documents",
	"url":       "info_url",
	"link":      "info_url",

	"rate_type":       "rate_types",
	"collateral":      "collateral_types",
	"collateral_type": "collateral_types",
	"담보종류":            "collateral_types",
}

// CSVParser handles parsing of loan catalog CSV files.
type CSVParser struct {
	columnMapping map[string]int
}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser {
	return &CSVParser{columnMapping: make(map[string]int)}
}

// ParseProducts parses catalog CSV content. Bad rows are reported per line
// and skipped; they never abort the rest of the file.
func (p *CSVParser) ParseProducts(content string) ([]*models.LoanProduct, []error) {
	if strings.TrimSpace(content) == "" {
		return nil, []error{ErrEmptyCSV}
	}

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, "\ufeff")))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read header: %w", err)}
	}

	if err := p.buildColumnMapping(header); err != nil {
		return nil, []error{err}
	}

	var products []*models.LoanProduct
	var parseErrors []error

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already carries its line number
			parseErrors = append(parseErrors, err)
			continue
		}
		if isBlankRecord(record) {
			continue
		}
		lineNum, _ := reader.FieldPos(0)

		product, err := p.parseRow(record)
		if err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		if err := models.ValidateLoanProduct(product); err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		products = append(products, product)
	}

	if len(products) == 0 && len(parseErrors) > 0 {
		return nil, append([]error{ErrNoDataRows}, parseErrors...)
	}

	return products, parseErrors
}

func normalizeHeader(col string) string {
	n := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
	n = strings.ReplaceAll(n, " ", "_")
	if alias, ok := ColumnAliases[n]; ok {
		return alias
	}
	return n
}

// buildColumnMapping creates a mapping of standard column names to their indices.
func (p *CSVParser) buildColumnMapping(header []string) error {
	p.columnMapping = make(map[string]int)
	for i, col := range header {
		p.columnMapping[normalizeHeader(col)] = i
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := p.columnMapping[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return nil
}

// parseRow parses a single CSV row into a LoanProduct. Absent optional
// columns leave the zero value.
func (p *CSVParser) parseRow(record []string) (*models.LoanProduct, error) {
	get := func(column string) string {
		idx, ok := p.columnMapping[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	product := &models.LoanProduct{
		LenderName:    get("lender_name"),
		ProductName:   get("product_name"),
		Category:      get("category"),
		RateRange:     get("rate_range"),
		MaxAmountText: get("max_amount_text"),
		LoanTerm:      get("loan_term"),
		Qualification: models.Qualification{
			Age:           get("qual_age"),
			HomeOwnership: get("qual_home_ownership"),
			Income:        get("qual_income"),
			CreditScore:   get("qual_credit_score"),
		},
		RequiredDocuments: splitList(get("required_documents")),
		InfoURL:           get("info_url"),
		IsActive:          true,
	}

	for _, s := range splitList(get("rate_types")) {
		product.RateTypes = append(product.RateTypes, models.NormalizeRateType(s))
	}
	for _, s := range splitList(get("collateral_types")) {
		product.CollateralTypes = append(product.CollateralTypes, models.NormalizeCollateralType(s))
	}

	var err error
	if product.LTV, err = parseFloat(get("ltv")); err != nil {
		return nil, fmt.Errorf("invalid ltv: %w", err)
	}
	if product.PreferentialRate, err = parseFloat(get("preferential_rate")); err != nil {
		return nil, fmt.Errorf("invalid preferential_rate: %w", err)
	}

	flags := []struct {
		column string
		dest   *bool
	}{
		{"dsr_preferred", &product.DSRPreferred},
		{"mobile_available", &product.MobileAvailable},
		{"youth_preferred", &product.YouthPreferred},
		{"simple_documents", &product.SimpleDocuments},
	}
	for _, f := range flags {
		if *f.dest, err = parseBool(get(f.column)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", f.column, err)
		}
	}

	return product, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ListSeparator) {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func isBlankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseFloat parses numeric cells; empty means zero.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.ReplaceAll(s, ",", ""), "%"))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseBool accepts the usual spreadsheet spellings; empty means false.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "no", "n", "0", "x", "아니오", "불가":
		return false, nil
	case "true", "yes", "y", "1", "o", "예", "가능":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
}

// ValidateCSVStructure performs a quick validation of CSV structure without full parsing.
func ValidateCSVStructure(content string) (*CSVValidationResult, error) {
	result := &CSVValidationResult{
		Valid:          false,
		RowCount:       0,
		Columns:        []string{},
		MissingColumns: []string{},
		Errors:         []string{},
	}

	if strings.TrimSpace(content) == "" {
		result.Errors = append(result.Errors, "empty file")
		return result, nil
	}

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, "\ufeff")))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to read header: %v", err))
		return result, nil
	}

	normalizedColumns := make(map[string]bool)
	for _, col := range header {
		normalizedColumns[normalizeHeader(col)] = true
		result.Columns = append(result.Columns, col)
	}

	for _, required := range RequiredColumns {
		if !normalizedColumns[required] {
			result.MissingColumns = append(result.MissingColumns, required)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row error: %v", err))
			continue
		}
		if !isBlankRecord(record) {
			result.RowCount++
		}
	}

	result.Valid = len(result.MissingColumns) == 0 && result.RowCount > 0

	return result, nil
}

// CSVValidationResult contains the results of CSV validation.
type CSVValidationResult struct {
	Valid          bool     `json:"valid"`
	RowCount       int      `json:"row_count"`
	Columns        []string `json:"columns"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors"`
}
