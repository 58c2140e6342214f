package classify

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a ruleset from a TOML file. The file uses [[table]], [[ocr_table]]
// and [[unit]] rule arrays plus a period_keywords list:
//
//	period_keywords = ["quarter", "year", "fy"]
//
//	[[table]]
//	label = "CASH_FLOW"
//	keywords = ["cash flow", "operating activities"]
//
//	[[unit]]
//	label = "USD millions"
//	keywords = ["$ million", "usd million"]
//
// Sections omitted from the file fall back to the defaults, so a file can
// override just the table rules while keeping the built-in units.
func Load(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset: %w", err)
	}

	var loaded Ruleset
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse ruleset: %w", err)
	}

	rs := DefaultRuleset()
	if loaded.Tables != nil {
		rs.Tables = loaded.Tables
	}
	if loaded.OCRTables != nil {
		rs.OCRTables = loaded.OCRTables
	}
	if loaded.Units != nil {
		rs.Units = loaded.Units
	}
	if loaded.PeriodKeywords != nil {
		rs.PeriodKeywords = loaded.PeriodKeywords
	}
	return rs, nil
}
