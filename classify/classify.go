package classify

import (
	"strings"

	"github.com/tsawler/fintab/model"
)

// Unknown is the label assigned when no classification rule matches.
const Unknown = "UNKNOWN"

// Rule pairs a label with the keywords that select it. Matching is
// case-insensitive substring containment over the combined table text.
type Rule struct {
	Label    string   `toml:"label"`
	Keywords []string `toml:"keywords"`
}

// Ruleset holds the ordered heuristic rules. Order matters everywhere:
// the first matching rule wins.
type Ruleset struct {
	// Tables are the classification rules, most specific first.
	Tables []Rule `toml:"table"`

	// OCRTables are appended to Tables when classifying OCR regions, whose
	// noisier text justifies a broader catch-all before UNKNOWN.
	OCRTables []Rule `toml:"ocr_table"`

	// Units are the measurement-unit rules, most specific first.
	Units []Rule `toml:"unit"`

	// PeriodKeywords select header cells that label reporting periods.
	PeriodKeywords []string `toml:"period_keywords"`
}

// DefaultRuleset returns the built-in rules for financial-disclosure
// documents.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		Tables: []Rule{
			{Label: "RATIOS", Keywords: []string{"ratio", "coverage", "debt service", "icr"}},
			{Label: "NDCF", Keywords: []string{"ndcf", "net distributable cash flow"}},
			{Label: "DISTRIBUTION", Keywords: []string{"distribution", "per unit", "dpu"}},
			{Label: "P&L", Keywords: []string{"profit", "loss", "income", "revenue", "expenses"}},
			{Label: "BALANCE_SHEET", Keywords: []string{"assets", "liabilities", "equity", "balance sheet"}},
		},
		OCRTables: []Rule{
			{Label: "FINANCIAL", Keywords: []string{"financial", "statement", "quarter", "year"}},
		},
		Units: []Rule{
			{Label: "₹ millions", Keywords: []string{"₹ million", "inr million", "rs. million"}},
			{Label: "₹ lakhs", Keywords: []string{"₹ lakh", "inr lakh", "rs. lakh"}},
			{Label: "₹ crores", Keywords: []string{"₹ crore", "inr crore", "rs. crore"}},
			{Label: "%", Keywords: []string{"%", "percent", "percentage"}},
			{Label: "times", Keywords: []string{"times", " x "}},
			{Label: "INR", Keywords: []string{"₹", "inr", "rs."}},
		},
		PeriodKeywords: []string{"quarter", "year", "month", "fy", "ended", "202"},
	}
}

// Classify labels a table from its content and the context lines above it.
// The search text is the lowercase concatenation of context-above and every
// cell; the first rule with any keyword match wins. Returns Unknown when
// nothing matches.
func (r *Ruleset) Classify(content model.Content, contextAbove []string) string {
	text := searchText(content, contextAbove)
	if label, ok := firstMatch(r.Tables, text); ok {
		return label
	}
	return Unknown
}

// ClassifyOCR labels an OCR table region. It applies the standard rules
// first, then the OCR-specific catch-all rules.
func (r *Ruleset) ClassifyOCR(content model.Content, contextAbove []string) string {
	text := searchText(content, contextAbove)
	if label, ok := firstMatch(r.Tables, text); ok {
		return label
	}
	if label, ok := firstMatch(r.OCRTables, text); ok {
		return label
	}
	return Unknown
}

// Unit detects the measurement unit for a table, or returns "" when no unit
// rule matches. Rules are ordered so specific labels ("₹ crores") are tried
// before generic ones ("INR").
func (r *Ruleset) Unit(content model.Content, contextAbove []string) string {
	text := searchText(content, contextAbove)
	if label, ok := firstMatch(r.Units, text); ok {
		return label
	}
	return ""
}

// Periods returns the header-row cells that mention a reporting period, in
// original column order without deduplication. Only the first grid row is
// scanned.
func (r *Ruleset) Periods(headerRow []string) []string {
	var periods []string
	for _, cell := range headerRow {
		lower := strings.ToLower(cell)
		for _, kw := range r.PeriodKeywords {
			if strings.Contains(lower, kw) {
				periods = append(periods, cell)
				break
			}
		}
	}
	return periods
}

// searchText builds the lowercase haystack: context-above lines followed by
// the table body text, joined with spaces.
func searchText(content model.Content, contextAbove []string) string {
	parts := make([]string, 0, len(contextAbove)+1)
	parts = append(parts, contextAbove...)
	if content != nil {
		// Flatten row breaks so keywords can match across row boundaries.
		parts = append(parts, strings.ReplaceAll(content.Text(), "\n", " "))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func firstMatch(rules []Rule, text string) (string, bool) {
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return rule.Label, true
			}
		}
	}
	return "", false
}
