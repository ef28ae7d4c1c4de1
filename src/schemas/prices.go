package schemas

// PriceResponse is the single-symbol quote lookup payload.
type PriceResponse struct {
	Symbol    string  `json:"symbol"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Timestamp string  `json:"timestamp"`
}

// RefreshError records one holding the batch refresh could not price.
type RefreshError struct {
	Symbol string `json:"symbol"`
	Error  string `json:"error"`
}

// RefreshResult is the batch refresh tally. A failed symbol never aborts
// the batch; it lands in Errors instead.
type RefreshResult struct {
	Updated int            `json:"updated"`
	Failed  int            `json:"failed"`
	Errors  []RefreshError `json:"errors"`
}

// TickerSuggestion is one search hit from the quote provider.
type TickerSuggestion struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
