package recommender

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"loan-recommendation-engine/internal/models"
)

// adultAge is the minimum age implied by "adult" requirements.
const adultAge = 19

// ProductCategory is the catalog's loan category after classification.
type ProductCategory int

const (
	CategoryUnset ProductCategory = iota
	CategoryCollateral
	CategoryLease
	CategoryOther
)

// ParseProductCategory classifies catalog category text. Anything mentioning
// collateral is a collateral product; lease products must match exactly.
func ParseProductCategory(text string) ProductCategory {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case t == "":
		return CategoryUnset
	case t == "lease-deposit-loan" || t == "전세자금대출":
		return CategoryLease
	case strings.Contains(t, "collateral") || strings.Contains(t, "담보"):
		return CategoryCollateral
	}
	return CategoryOther
}

// Matches reports whether the borrower's desired category selects this
// product category. An unset side matches everything.
func (c ProductCategory) Matches(want models.LoanCategory) bool {
	if want == "" || c == CategoryUnset {
		return true
	}
	switch want {
	case models.LoanCategoryCollateral:
		return c == CategoryCollateral
	case models.LoanCategoryLease:
		return c == CategoryLease
	}
	return false
}

// AgeRuleKind tags the shape of an age requirement.
type AgeRuleKind int

const (
	AgeRuleUnparsed AgeRuleKind = iota
	AgeRuleRange
	AgeRuleMinimum
)

// AgeRule is a parsed age requirement.
type AgeRule struct {
	Kind AgeRuleKind
	Min  int
	Max  int
}

var (
	// "19세 이상 34세 이하" and "19세 이상 ~ 39세 미만"; 미만 is exclusive
	koreanAgeRangePattern = regexp.MustCompile(`(\d{1,3})\s*세?\s*이상\s*(?:~|-|–|—|,)?\s*(?:만\s*)?(\d{1,3})\s*세?\s*(이하|미만)`)
	ageRangePattern       = regexp.MustCompile(`(\d{1,3})\s*(?:세\s*)?(?:~|-|–|—|to)\s*(?:만\s*)?(\d{1,3})`)
	ageMinimumPattern     = regexp.MustCompile(`(\d{1,3})\s*(?:\+|세\s*이상|years?\s+(?:old\s+)?(?:or\s+older|and\s+(?:over|above))|or\s+older|and\s+(?:over|above)|이상)`)
)

// ParseAgeRule recognises "19-34" and "19세 이상 34세 이하" ranges, "19+"
// minimums and "adult".
func ParseAgeRule(text string) AgeRule {
	t := strings.ToLower(text)
	if m := koreanAgeRangePattern.FindStringSubmatch(t); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if m[3] == "미만" {
			hi--
		}
		if lo <= hi {
			return AgeRule{Kind: AgeRuleRange, Min: lo, Max: hi}
		}
	}
	if m := ageRangePattern.FindStringSubmatch(t); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo <= hi {
			return AgeRule{Kind: AgeRuleRange, Min: lo, Max: hi}
		}
	}
	if m := ageMinimumPattern.FindStringSubmatch(t); m != nil {
		lo, _ := strconv.Atoi(m[1])
		return AgeRule{Kind: AgeRuleMinimum, Min: lo}
	}
	if strings.Contains(t, "adult") || strings.Contains(t, "성인") {
		return AgeRule{Kind: AgeRuleMinimum, Min: adultAge}
	}
	return AgeRule{Kind: AgeRuleUnparsed}
}

// Allows fails closed on unparsed rules and unknown ages.
func (r AgeRule) Allows(age *int) bool {
	if age == nil {
		return false
	}
	switch r.Kind {
	case AgeRuleRange:
		return *age >= r.Min && *age <= r.Max
	case AgeRuleMinimum:
		return *age >= r.Min
	}
	return false
}

// HomeRuleKind tags a home-ownership requirement.
type HomeRuleKind int

const (
	HomeRuleUnclassified HomeRuleKind = iota
	HomeRuleNoHomeOnly
	HomeRuleFirstTimeOrNoHome
	HomeRuleAny
	HomeRuleNoHomeOrOneHome
)

var (
	homeAnyKeywords       = []string{"regardless", "collateral provider", "무관", "담보제공자"}
	homeFirstTimeKeywords = []string{"first-time", "first time", "생애최초"}
	homeOneHomeKeywords   = []string{"one-home", "one home", "single home", "1주택", "1 home"}
	homeNoHomeKeywords    = []string{"no-home", "no home", "homeless", "무주택"}
)

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// ParseHomeRule classifies home-ownership requirement text.
func ParseHomeRule(text string) HomeRuleKind {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, homeAnyKeywords):
		return HomeRuleAny
	case containsAny(t, homeFirstTimeKeywords):
		return HomeRuleFirstTimeOrNoHome
	case containsAny(t, homeOneHomeKeywords):
		return HomeRuleNoHomeOrOneHome
	case containsAny(t, homeNoHomeKeywords):
		return HomeRuleNoHomeOnly
	}
	return HomeRuleUnclassified
}

// Allows reports whether the borrower's housing status satisfies the rule.
func (k HomeRuleKind) Allows(status models.HomeOwnership) bool {
	switch k {
	case HomeRuleAny:
		return true
	case HomeRuleNoHomeOnly:
		return status == models.HomeOwnershipNone
	case HomeRuleFirstTimeOrNoHome:
		return status == models.HomeOwnershipNone || status == models.HomeOwnershipFirstTimeBuyer
	case HomeRuleNoHomeOrOneHome:
		return status == models.HomeOwnershipNone || status == models.HomeOwnershipOne
	}
	return false
}

// IncomeRuleKind tags an income requirement.
type IncomeRuleKind int

const (
	IncomeRuleUnspecified IncomeRuleKind = iota
	IncomeRuleNoLimit
	IncomeRuleMax
)

// IncomeRule is a parsed income requirement. Limit is in 10k units.
type IncomeRule struct {
	Kind  IncomeRuleKind
	Limit int64
}

var (
	incomeNoLimitKeywords = []string{"no income limit", "no limit", "unlimited", "소득 무관", "소득무관", "제한 없음", "제한없음"}
	incomeCeilingKeywords = []string{"≤", "<=", "or less", "under", "below", "up to", "at most", "이하", "미만"}
	bareNumberPattern     = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
)

// ParseIncomeRule recognises "no income limit" and "income ≤ X" text.
func ParseIncomeRule(text string) IncomeRule {
	t := strings.ToLower(text)
	if containsAny(t, incomeNoLimitKeywords) {
		return IncomeRule{Kind: IncomeRuleNoLimit}
	}
	if !containsAny(t, incomeCeilingKeywords) {
		return IncomeRule{Kind: IncomeRuleUnspecified}
	}
	if amount, ok := ParseMoney(t); ok {
		return IncomeRule{Kind: IncomeRuleMax, Limit: amount}
	}
	// No unit given: the figure is already in 10k units.
	if m := bareNumberPattern.FindString(t); m != "" {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64); err == nil {
			return IncomeRule{Kind: IncomeRuleMax, Limit: int64(v)}
		}
	}
	return IncomeRule{Kind: IncomeRuleUnspecified}
}

func (r IncomeRule) Allows(income int64) bool {
	if r.Kind == IncomeRuleMax {
		return income <= r.Limit
	}
	return true
}

// CreditRuleKind tags a credit-score requirement.
type CreditRuleKind int

const (
	CreditRuleUnspecified CreditRuleKind = iota
	CreditRuleRecommended
	CreditRuleMinimum
)

// CreditRule is a parsed credit-score requirement.
type CreditRule struct {
	Kind CreditRuleKind
	Min  int
}

var (
	creditRecommendedKeywords = []string{"recommended", "권장"}
	creditScorePattern        = regexp.MustCompile(`\d{3,4}`)
)

// ParseCreditRule extracts a minimum score. A "recommended" qualifier makes
// the threshold advisory and so always passes.
func ParseCreditRule(text string) CreditRule {
	t := strings.ToLower(text)
	if containsAny(t, creditRecommendedKeywords) {
		return CreditRule{Kind: CreditRuleRecommended}
	}
	if m := creditScorePattern.FindString(t); m != "" {
		v, _ := strconv.Atoi(m)
		return CreditRule{Kind: CreditRuleMinimum, Min: v}
	}
	return CreditRule{Kind: CreditRuleUnspecified}
}

// Allows treats a missing score as failing any numeric threshold.
func (r CreditRule) Allows(score *int) bool {
	if r.Kind != CreditRuleMinimum {
		return true
	}
	return score != nil && *score >= r.Min
}

// RateRange is a parsed "min ~ max %" rate description.
type RateRange struct {
	Min    float64
	Max    float64
	Parsed bool
}

var ratePattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseRateRange reads the first two numbers of rate text. A single figure is
// a fixed rate with Min == Max.
func ParseRateRange(text string) RateRange {
	nums := ratePattern.FindAllString(text, 2)
	if len(nums) == 0 {
		return RateRange{}
	}
	lo, err := strconv.ParseFloat(nums[0], 64)
	if err != nil {
		return RateRange{}
	}
	hi := lo
	if len(nums) == 2 {
		if v, err := strconv.ParseFloat(nums[1], 64); err == nil {
			hi = v
		}
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return RateRange{Min: lo, Max: hi, Parsed: true}
}

func (r RateRange) Average() float64 { return (r.Min + r.Max) / 2 }

func (r RateRange) Spread() float64 { return r.Max - r.Min }

var (
	termYearsPattern  = regexp.MustCompile(`(\d{1,2})\s*(?:years?|yrs?|y\b|년)`)
	termMonthsPattern = regexp.MustCompile(`(\d{1,3})\s*(?:months?|개월)`)
)

// ParseTermMonths returns the longest term mentioned, in months, or 0.
func ParseTermMonths(text string) int {
	t := strings.ToLower(text)
	best := 0
	for _, m := range termYearsPattern.FindAllStringSubmatch(t, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && v*12 > best {
			best = v * 12
		}
	}
	for _, m := range termMonthsPattern.FindAllStringSubmatch(t, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && v > best {
			best = v
		}
	}
	return best
}

var (
	englishMoneyPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(billion|million|bn|mn)\b`)
	koreanMoneyPattern  = regexp.MustCompile(`(?:(\d+(?:\.\d+)?)\s*억)?\s*(?:(\d+)\s*천\s*만?)?\s*(?:(\d+)\s*백\s*만?)?\s*(?:(\d[\d,]*)\s*만)?`)
)

// ParseMoney finds the first explicit amount in text and converts it to 10k
// units. Bare numbers without a unit are not treated as money.
func ParseMoney(text string) (int64, bool) {
	t := strings.ToLower(text)
	if m := englishMoneyPattern.FindStringSubmatch(t); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch m[2] {
			case "billion", "bn":
				return int64(math.Round(v * 100000)), true
			default:
				return int64(math.Round(v * 100)), true
			}
		}
	}
	for _, m := range koreanMoneyPattern.FindAllStringSubmatch(t, -1) {
		if m[1] == "" && m[2] == "" && m[3] == "" && m[4] == "" {
			continue
		}
		var total float64
		if m[1] != "" {
			v, _ := strconv.ParseFloat(m[1], 64)
			total += v * 10000
		}
		if m[2] != "" {
			v, _ := strconv.ParseFloat(m[2], 64)
			total += v * 1000
		}
		if m[3] != "" {
			v, _ := strconv.ParseFloat(m[3], 64)
			total += v * 100
		}
		if m[4] != "" {
			v, _ := strconv.ParseFloat(strings.ReplaceAll(m[4], ",", ""), 64)
			total += v
		}
		return int64(math.Round(total)), true
	}
	return 0, false
}

// ParseMaxAmount returns an explicit ceiling from max-amount text.
// Percentage-of-collateral phrasing without a figure yields no cap.
func ParseMaxAmount(text string) (int64, bool) {
	return ParseMoney(text)
}

var percentPattern = regexp.MustCompile(`(\d{2})\s*%`)

// ParseGuaranteeRatio picks the first 80/75/70/65% figure from lease
// max-amount text, or returns 0.
func ParseGuaranteeRatio(text string) float64 {
	for _, m := range percentPattern.FindAllStringSubmatch(text, -1) {
		switch m[1] {
		case "80", "75", "70", "65":
			v, _ := strconv.Atoi(m[1])
			return float64(v) / 100
		}
	}
	return 0
}
