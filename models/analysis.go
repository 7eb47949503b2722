package models

// AnalysisResult is the structured outcome of one image classification.
// Fallback marks the fixed degraded result the gateway substitutes when the
// classifier cannot produce one, so callers can assert on the failure branch
// instead of probing Confidence == 0.
type AnalysisResult struct {
	Category        Category `json:"category"`
	CategoryLabel   string   `json:"categoryLabel"`
	Description     string   `json:"description"`
	SuggestedAction string   `json:"suggestedAction"`
	Confidence      float64  `json:"confidence"` // 0.0 - 1.0
	Fallback        bool     `json:"fallback"`
}
