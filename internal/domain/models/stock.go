package models

// Quote is the current price plus intraday change against the first
// sample of the one-day series. Change is close[last]-close[first], which
// matches the upstream contract even though it is not a prior-day delta.
type Quote struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// Profile holds company identity fields.
type Profile struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Industry string `json:"industry"`
	Sector   string `json:"sector"`
	Country  string `json:"country"`
	Website  string `json:"website"`
}

// HistoricalPoint is one daily close, date formatted YYYY-MM-DD.
type HistoricalPoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

type NewsItem struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Link        string `json:"link"`
	PublishedAt string `json:"published_at"`
}

type Sentiment struct {
	OverallPrediction *string `json:"overall_prediction"`
}

// RiskAnalysis carries the normalized risk collaborator output. Fields are
// strings so "N/A" can stand in when the collaborator is unavailable.
type RiskAnalysis struct {
	RiskLevel    string   `json:"risk_level"`
	Volatility   string   `json:"volatility"`
	DailyReturn  string   `json:"daily_return"`
	CurrentPrice string   `json:"current_price"`
	Trend        string   `json:"trend"`
	LatestClose  *float64 `json:"latest_close"`
	Error        string   `json:"error,omitempty"`
}

type PricePrediction struct {
	PredictedPrice       float64 `json:"predicted_price"`
	LastClosePrice       float64 `json:"last_close_price"`
	PriceChange          float64 `json:"price_change"`
	PredictionConfidence int     `json:"prediction_confidence"`
	PredictionDirection  string  `json:"prediction_direction"`
}

// StockDetails is the aggregate returned for /stocks/details. It is always
// fully populated: a failed sub-fetch degrades its own fields to the
// defaults set by NewStockDetails, never the whole record.
type StockDetails struct {
	CurrentQuote     Quote             `json:"current_quote"`
	Profile          Profile           `json:"profile"`
	HistoricalPrices []HistoricalPoint `json:"historical_prices"`
	News             []NewsItem        `json:"news"`
	Sentiment        *Sentiment        `json:"sentiment"`
	RiskAnalysis     *RiskAnalysis     `json:"risk_analysis"`
	PricePrediction  *PricePrediction  `json:"price_prediction"`
	Error            string            `json:"error,omitempty"`
}

// SentimentNeutral is the fallback prediction label when the sentiment
// collaborator fails.
const SentimentNeutral = "Neutral"

// NewStockDetails builds the aggregate with safe defaults for every field.
func NewStockDetails(symbol string) *StockDetails {
	neutral := SentimentNeutral
	return &StockDetails{
		CurrentQuote: Quote{},
		Profile: Profile{
			Name:     symbol,
			Symbol:   symbol,
			Industry: "N/A",
			Sector:   "N/A",
			Country:  "N/A",
			Website:  "#",
		},
		HistoricalPrices: []HistoricalPoint{},
		News:             []NewsItem{},
		Sentiment:        &Sentiment{OverallPrediction: &neutral},
		RiskAnalysis:     DefaultRiskAnalysis(),
		PricePrediction:  nil,
	}
}

// DefaultRiskAnalysis is the all-"N/A" shape used whenever the risk
// collaborator errors or is unreachable.
func DefaultRiskAnalysis() *RiskAnalysis {
	return &RiskAnalysis{
		RiskLevel:    "N/A",
		Volatility:   "N/A",
		DailyReturn:  "N/A",
		CurrentPrice: "N/A",
		Trend:        "N/A",
		LatestClose:  nil,
	}
}

// TickerMatch is one row of a ticker search result, kept in the provider's
// order.
type TickerMatch struct {
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	StockExchange     string `json:"stockExchange"`
	ExchangeShortName string `json:"exchangeShortName"`
}

// SentimentReport is what the sentiment collaborator returns: its own news
// items plus an overall label. Non-empty news replaces provider news.
type SentimentReport struct {
	News              []NewsItem
	OverallPrediction string
}
