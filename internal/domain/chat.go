package domain

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChartData is attached to an assistant reply when the user asked to see a
// price chart.
type ChartData struct {
	Title string              `json:"title"`
	Type  string              `json:"type"`
	Data  []AssetHistoryPoint `json:"data"`
}

type ChatResponse struct {
	Message string     `json:"message"`
	Chart   *ChartData `json:"chart,omitempty"`
}
