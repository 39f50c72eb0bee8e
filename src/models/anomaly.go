package models

type Anomaly struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Amount      float64 `json:"amount"`
}
