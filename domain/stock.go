package domain

import "strings"

// Stock is immutable reference data describing one listed company.
// Ticker is the unique key and is stored uppercase by convention.
type Stock struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Sector   string `json:"sector"`
}

// NormalizeTicker uppercases and trims a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// IsValidTicker reports whether the symbol looks like a ticker: 1-10
// uppercase letters, digits, '.' or '-' after normalization.
func IsValidTicker(ticker string) bool {
	t := NormalizeTicker(ticker)
	if len(t) == 0 || len(t) > 10 {
		return false
	}
	for _, r := range t {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return false
		}
	}
	return true
}
