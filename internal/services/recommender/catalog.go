package recommender

import (
	"context"
	"time"

	"loan-recommendation-engine/internal/models"
)

// CompiledProduct is a catalog entry with its free-text rules parsed into
// typed variants. It is built once per catalog snapshot.
type CompiledProduct struct {
	Product        *models.LoanProduct
	Category       ProductCategory
	Age            AgeRule
	Home           HomeRuleKind
	Income         IncomeRule
	Credit         CreditRule
	Rate           RateRange
	TermMonths     int
	MaxAmount      int64
	HasMaxAmount   bool
	GuaranteeRatio float64
}

// Compile parses a product's requirement and pricing text.
func Compile(p *models.LoanProduct) *CompiledProduct {
	c := &CompiledProduct{
		Product:        p,
		Category:       ParseProductCategory(p.Category),
		Age:            ParseAgeRule(p.Qualification.Age),
		Home:           ParseHomeRule(p.Qualification.HomeOwnership),
		Income:         ParseIncomeRule(p.Qualification.Income),
		Credit:         ParseCreditRule(p.Qualification.CreditScore),
		Rate:           ParseRateRange(p.RateRange),
		TermMonths:     ParseTermMonths(p.LoanTerm),
		GuaranteeRatio: ParseGuaranteeRatio(p.MaxAmountText),
	}
	c.MaxAmount, c.HasMaxAmount = ParseMaxAmount(p.MaxAmountText)
	return c
}

// IsLease reports whether the product is a lease-deposit loan.
func (c *CompiledProduct) IsLease() bool { return c.Category == CategoryLease }

// IsCollateral reports whether the product is a collateral loan.
func (c *CompiledProduct) IsCollateral() bool { return c.Category == CategoryCollateral }

// Catalog is an immutable, compiled snapshot of loan products in catalog
// order. It is safe for concurrent use.
type Catalog struct {
	products []*CompiledProduct
	builtAt  time.Time
}

// NewCatalog compiles products, skipping nil entries.
func NewCatalog(products []*models.LoanProduct) *Catalog {
	compiled := make([]*CompiledProduct, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		compiled = append(compiled, Compile(p))
	}
	return &Catalog{products: compiled, builtAt: time.Now()}
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// BuiltAt returns when the snapshot was compiled.
func (c *Catalog) BuiltAt() time.Time { return c.builtAt }

// Products returns the raw catalog entries in catalog order.
func (c *Catalog) Products() []*models.LoanProduct {
	if c == nil {
		return []*models.LoanProduct{}
	}
	out := make([]*models.LoanProduct, len(c.products))
	for i, cp := range c.products {
		out[i] = cp.Product
	}
	return out
}

// CatalogSource supplies the current catalog snapshot.
type CatalogSource interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

// StaticSource serves a fixed catalog, e.g. the seeded one in demo mode.
type StaticSource struct {
	catalog *Catalog
}

// NewStaticSource compiles products into a fixed source.
func NewStaticSource(products []*models.LoanProduct) *StaticSource {
	return &StaticSource{catalog: NewCatalog(products)}
}

func (s *StaticSource) Catalog(_ context.Context) (*Catalog, error) {
	return s.catalog, nil
}
