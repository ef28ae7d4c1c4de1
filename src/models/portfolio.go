package models

import (
	"fmt"
	"strings"
)

// Portfolio identifies one of the two independent holding collections.
type Portfolio string

const (
	PortfolioPersonal Portfolio = "PERSONAL"
	PortfolioSolo401k Portfolio = "SOLO_401K"
)

const (
	PersonalAssetsTable = "personal_assets"
	Solo401kAssetsTable = "solo_401k_assets"
)

// TableName maps the portfolio to its backing table. Holdings are owned
// exclusively by their portfolio table.
func (p Portfolio) TableName() string {
	if p == PortfolioSolo401k {
		return Solo401kAssetsTable
	}
	return PersonalAssetsTable
}

// ParsePortfolio accepts the URL form ("personal", "solo_401k") as well as
// the table names used by the activity log.
func ParsePortfolio(s string) (Portfolio, error) {
	switch strings.ToLower(s) {
	case "personal", "personal_assets":
		return PortfolioPersonal, nil
	case "solo_401k", "solo401k", "solo_401k_assets":
		return PortfolioSolo401k, nil
	default:
		return "", fmt.Errorf("unknown portfolio: %s", s)
	}
}

// PortfolioForTable infers the portfolio from an activity log table name.
// Non-asset tables return an empty portfolio.
func PortfolioForTable(tableName string) Portfolio {
	switch tableName {
	case PersonalAssetsTable:
		return PortfolioPersonal
	case Solo401kAssetsTable:
		return PortfolioSolo401k
	default:
		return ""
	}
}

// Portfolios lists both collections in the order batch operations visit them.
func Portfolios() []Portfolio {
	return []Portfolio{PortfolioPersonal, PortfolioSolo401k}
}
