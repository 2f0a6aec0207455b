package ses

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"loan-recommendation-engine/internal/models"
)

const maxSummaryProducts = 3

// SummaryParams contains data for a recommendation summary email.
type SummaryParams struct {
	UserID            string
	Email             string
	ProductCount      int
	TopProducts       []SummaryProduct
	MaxLoanAmount     int64
	CashAssets        int64
	MaxPurchaseAmount int64
	SourceProduct     string
	SourceLender      string
}

// SummaryProduct is one ranked product in the email.
type SummaryProduct struct {
	Rank          int
	ProductName   string
	LenderName    string
	RateRange     string
	Score         float64
	MaxLoanAmount int64
}

// BuildSummaryParams takes the top limit products from a result.
func BuildSummaryParams(user *models.UserConditions, result *models.RecommendationResult, limit int) SummaryParams {
	params := SummaryParams{}
	if user != nil {
		params.UserID = user.UserID
		params.Email = user.Email
	}
	if result == nil {
		return params
	}

	params.ProductCount = len(result.Products)
	for i, p := range result.Products {
		if i >= limit {
			break
		}
		params.TopProducts = append(params.TopProducts, SummaryProduct{
			Rank:          i + 1,
			ProductName:   p.ProductName,
			LenderName:    p.LenderName,
			RateRange:     p.RateRange,
			Score:         p.Score,
			MaxLoanAmount: p.MaxLoanAmount,
		})
	}

	if info := result.PurchaseInfo; info != nil {
		params.MaxLoanAmount = info.MaxLoanAmount
		params.CashAssets = info.CashAssets
		params.MaxPurchaseAmount = info.MaxPurchaseAmount
		params.SourceProduct = info.SourceProduct
		params.SourceLender = info.SourceLender
	}
	return params
}

// SummarySubject is the email subject line.
func SummarySubject(params SummaryParams) string {
	return fmt.Sprintf("Your loan recommendations: %d products, up to %s purchase",
		params.ProductCount, FormatAmount(params.MaxPurchaseAmount))
}

// FormatAmount renders a 10k-unit amount as Korean won, e.g. 35000 as
// "3억 5,000만원".
func FormatAmount(v int64) string {
	if v <= 0 {
		return "0원"
	}
	eok, man := v/10000, v%10000
	switch {
	case eok == 0:
		return groupThousands(man) + "만원"
	case man == 0:
		return groupThousands(eok) + "억원"
	}
	return groupThousands(eok) + "억 " + groupThousands(man) + "만원"
}

func groupThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

var summaryTemplate = template.Must(template.New("recommendation_summary").Funcs(template.FuncMap{
	"amount": FormatAmount,
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1f4e79; color: white; padding: 24px; border-radius: 10px 10px 0 0; text-align: center; }
        .content { background: #f7f9fb; padding: 24px; border-radius: 0 0 10px 10px; }
        .ceiling { font-size: 22px; font-weight: bold; color: #1f4e79; }
        .product { background: white; border-radius: 8px; padding: 16px; margin: 12px 0; }
        .product h3 { margin: 0 0 6px 0; }
        .meta { color: #666; font-size: 14px; }
        .footer { text-align: center; margin-top: 24px; color: #999; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Your Loan Recommendations</h1>
        <p>{{.ProductCount}} products matched your conditions</p>
    </div>
    <div class="content">
        {{if .SourceProduct}}
        <p>Maximum purchase amount</p>
        <p class="ceiling">{{amount .MaxPurchaseAmount}}</p>
        <p class="meta">Loan {{amount .MaxLoanAmount}} via {{.SourceProduct}} ({{.SourceLender}}) + cash {{amount .CashAssets}}</p>
        {{end}}
        {{range .TopProducts}}
        <div class="product">
            <h3>{{.Rank}}. {{.ProductName}}</h3>
            <p class="meta">{{.LenderName}} · rate {{.RateRange}} · score {{printf "%.1f" .Score}}</p>
            <p>Up to {{amount .MaxLoanAmount}}</p>
        </div>
        {{end}}
    </div>
    <div class="footer">
        <p>Amounts are estimates. Final limits are set by each lender's review.</p>
    </div>
</body>
</html>`))

// RenderSummaryHTML renders the HTML body.
func RenderSummaryHTML(params SummaryParams) (string, error) {
	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderSummaryText renders the plain text body.
func RenderSummaryText(params SummaryParams) string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("We found %d loan products that match your conditions.\n\n", params.ProductCount))
	if params.SourceProduct != "" {
		buf.WriteString(fmt.Sprintf("Maximum purchase amount: %s\n", FormatAmount(params.MaxPurchaseAmount)))
		buf.WriteString(fmt.Sprintf("  Loan %s via %s (%s) + cash %s\n\n",
			FormatAmount(params.MaxLoanAmount), params.SourceProduct, params.SourceLender, FormatAmount(params.CashAssets)))
	}

	for _, p := range params.TopProducts {
		buf.WriteString(fmt.Sprintf("%d. %s by %s\n", p.Rank, p.ProductName, p.LenderName))
		buf.WriteString(fmt.Sprintf("   Rate: %s | Score: %.1f\n", p.RateRange, p.Score))
		buf.WriteString(fmt.Sprintf("   Up to %s\n\n", FormatAmount(p.MaxLoanAmount)))
	}

	buf.WriteString("Amounts are estimates. Final limits are set by each lender's review.\n")
	return buf.String()
}
