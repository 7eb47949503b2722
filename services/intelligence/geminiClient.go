// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"handymatch/models"
)

const analysisModel = "models/gemini-1.5-pro"

// GeminiAnalysisService classifies home-issue photos with Gemini. One
// request per analysis, no retry, no caching; every failure mode collapses
// into the fallback result.
type GeminiAnalysisService struct {
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiAnalysisService builds the service. A missing or rejected API
// key does not fail startup; it leaves the model unset so every analysis
// takes the fallback path.
func NewGeminiAnalysisService(apiKey string, timeout time.Duration, logger *zap.Logger) *GeminiAnalysisService {
	svc := &GeminiAnalysisService{timeout: timeout, logger: logger}
	if apiKey == "" {
		logger.Warn("Gemini API key not configured, image analysis will degrade to fallback")
		return svc
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		logger.Warn("failed to create Gemini client, image analysis will degrade to fallback", zap.Error(err))
		return svc
	}

	model := client.GenerativeModel(analysisModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = analysisResponseSchema()
	svc.model = model
	return svc
}

// AnalyzeIssue sends the image with a fixed instruction and a constrained
// JSON response schema. The caller validates image size beforehand; this
// method does not re-validate it.
func (s *GeminiAnalysisService) AnalyzeIssue(ctx context.Context, imageData []byte, mimeType string) models.AnalysisResult {
	if s.model == nil {
		return FallbackResult()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx,
		genai.ImageData(imageFormat(mimeType), imageData),
		genai.Text(analysisPrompt()),
	)
	if err != nil {
		s.logger.Warn("Gemini analysis request failed", zap.Error(err))
		return FallbackResult()
	}

	result, err := parseAnalysisResponse(responseText(resp))
	if err != nil {
		s.logger.Warn("Gemini analysis response unusable", zap.Error(err))
		return FallbackResult()
	}
	return result
}

func analysisPrompt() string {
	return fmt.Sprintf(`Analise esta imagem de um problema de manutenção doméstica.
Identifique a categoria profissional mais apropriada para resolver este problema a partir da seguinte lista:
[%s].

Forneça uma breve descrição do problema visto na imagem.
Forneça uma ação imediata sugerida para o proprietário da casa.
Estime o nível de confiança (0-1).`, strings.Join(models.CategoryLabels(), ", "))
}

func analysisResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": {
				Type:        genai.TypeString,
				Enum:        models.CategoryLabels(),
				Description: "O tipo de profissional necessário",
			},
			"description": {
				Type:        genai.TypeString,
				Description: "Uma descrição concisa do problema visual",
			},
			"suggestedAction": {
				Type:        genai.TypeString,
				Description: "Conselho imediato para o usuário",
			},
			"confidence": {
				Type:        genai.TypeNumber,
				Description: "Nível de confiança entre 0 e 1",
			},
		},
		Required: []string{"category", "description", "suggestedAction", "confidence"},
	}
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

// parseAnalysisResponse decodes the constrained JSON answer. An absent,
// malformed or incomplete answer is a failure, not a partial success.
func parseAnalysisResponse(text string) (models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.AnalysisResult{}, fmt.Errorf("empty analysis response")
	}

	var raw struct {
		Category        string   `json:"category"`
		Description     string   `json:"description"`
		SuggestedAction string   `json:"suggestedAction"`
		Confidence      *float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("malformed analysis response: %w", err)
	}
	if raw.Description == "" || raw.SuggestedAction == "" || raw.Confidence == nil {
		return models.AnalysisResult{}, fmt.Errorf("analysis response missing required fields")
	}

	category, err := models.ParseCategory(raw.Category)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("analysis response category: %w", err)
	}

	confidence := *raw.Confidence
	if confidence < 0 || confidence > 1 {
		return models.AnalysisResult{}, fmt.Errorf("analysis confidence %v out of range", confidence)
	}

	return models.AnalysisResult{
		Category:        category,
		CategoryLabel:   category.Label(),
		Description:     raw.Description,
		SuggestedAction: raw.SuggestedAction,
		Confidence:      confidence,
	}, nil
}

func imageFormat(mimeType string) string {
	m := strings.ToLower(mimeType)
	if rest := strings.TrimPrefix(m, "image/"); rest != m && rest != "" {
		return rest
	}
	// Assume jpeg when the content type is absent or not an image/* type.
	return "jpeg"
}

// FallbackResult is the fixed degraded result returned whenever the
// classifier cannot produce one. The caller sees no distinction between a
// transport failure and an unusable answer.
func FallbackResult() models.AnalysisResult {
	return models.AnalysisResult{
		Category:        models.CategoryGeneral,
		CategoryLabel:   models.CategoryGeneral.Label(),
		Description:     "Não foi possível analisar a imagem. Por favor, descreva o problema manualmente.",
		SuggestedAction: "Contate um faz-tudo geral para avaliação.",
		Confidence:      0,
		Fallback:        true,
	}
}
