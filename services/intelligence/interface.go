package ai

import (
	"context"

	"handymatch/models"
)

// AnalysisService classifies a photo of a household problem into a trade
// category. Implementations never fail the caller: any underlying error
// degrades to the fixed fallback result.
type AnalysisService interface {
	AnalyzeIssue(ctx context.Context, imageData []byte, mimeType string) models.AnalysisResult
}
