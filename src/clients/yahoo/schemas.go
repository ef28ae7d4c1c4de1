package yahoo

// GetQuoteResponse mirrors the provider's v7 quote endpoint payload.
type GetQuoteResponse struct {
	QuoteResponse QuoteResponseBody `json:"quoteResponse"`
}

type QuoteResponseBody struct {
	Result []QuoteResult `json:"result"`
	Error  *QuoteError   `json:"error"`
}

type QuoteResult struct {
	Symbol                     string   `json:"symbol"`
	QuoteType                  string   `json:"quoteType"`
	Currency                   string   `json:"currency"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	ShortName                  string   `json:"shortName"`
	LongName                   string   `json:"longName"`
}

type QuoteError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// SearchResponse mirrors the provider's ticker search payload.
type SearchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
}

type SearchQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	QuoteType string `json:"quoteType"`
}

// Name returns the best available display name for a search hit.
func (q SearchQuote) Name() string {
	if q.ShortName != "" {
		return q.ShortName
	}
	return q.LongName
}
