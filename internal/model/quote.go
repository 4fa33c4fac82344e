package model

import "strings"

// Quote is a single point-in-time price record for a symbol. Field values
// are kept as strings because the service relays them from a CSV feed
// without converting.
type Quote struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

// WatchlistItem is one tracked symbol in the user's watchlist. IDs are
// assigned by the service; ordering is service-defined.
type WatchlistItem struct {
	ID     int64  `json:"id"`
	Symbol string `json:"symbol"`
}

// NormalizeSymbol canonicalizes a ticker symbol before it is used in any
// request. Idempotent.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
