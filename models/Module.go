package models

// Module is one day of course content, also called a seal.
type Module struct {
	ID             int    `json:"id"`
	DayNumber      int    `json:"dayNumber"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Icon           string `json:"icon"`
	Quote          string `json:"quote"`
	QuoteReference string `json:"quoteReference"`
	Explanation    string `json:"explanation"`
	Application    string `json:"application"`
	Affirmation    string `json:"affirmation"`
	AudioURL       string `json:"audioUrl,omitempty"`
}
