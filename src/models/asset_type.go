package models

import (
	"fmt"
	"strings"
)

// AssetType determines how a holding is priced.
type AssetType string

const (
	AssetTypeCash   AssetType = "CASH"
	AssetTypeStock  AssetType = "STOCK"
	AssetTypeCrypto AssetType = "CRYPTO"
	AssetTypeGold   AssetType = "GOLD"
	AssetTypeSilver AssetType = "SILVER"
	AssetTypeMisc   AssetType = "MISC"
)

// Provider symbols for metals futures quotes.
const (
	GoldFuturesSymbol   = "GC=F"
	SilverFuturesSymbol = "SI=F"
)

func ParseAssetType(s string) (AssetType, error) {
	switch AssetType(strings.ToUpper(s)) {
	case AssetTypeCash, AssetTypeStock, AssetTypeCrypto, AssetTypeGold, AssetTypeSilver, AssetTypeMisc:
		return AssetType(strings.ToUpper(s)), nil
	default:
		return "", fmt.Errorf("unknown asset type: %s", s)
	}
}

// IsFixedValue reports whether holdings of this type are pinned to a unit
// price of 1.00 and never quoted externally.
func (t AssetType) IsFixedValue() bool {
	return t == AssetTypeCash || t == AssetTypeMisc
}

// ProviderSymbol returns the symbol to request from the quote provider.
// Crypto symbols get a -USD quote-currency suffix unless one is already
// present, so BTC and BTC-USD resolve identically. Metals use fixed
// futures symbols regardless of the stored symbol.
func (t AssetType) ProviderSymbol(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	switch t {
	case AssetTypeCrypto:
		if !strings.Contains(symbol, "-") {
			return symbol + "-USD"
		}
		return symbol
	case AssetTypeGold:
		return GoldFuturesSymbol
	case AssetTypeSilver:
		return SilverFuturesSymbol
	default:
		return symbol
	}
}
