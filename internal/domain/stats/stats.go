package stats

// Aggregate rows shared by the reporting queries. Dates are rendered as
// YYYY-MM-DD so MySQL's DATE() and sqlite's date() group keys line up.

type DailyTotal struct {
	Date  string  `json:"date"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

type CurrencyTotal struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
}
