package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"empregoja-backend/models"
	"empregoja-backend/telemetry"
)

const analyzeTimeout = 60 * time.Second

// Gemini calls the multimodal completion API with the résumé photo and asks
// for the JSON contract the apps consume.
type Gemini struct {
	apiKey string
	model  string
}

func NewGemini() *Gemini {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Gemini{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
	}
}

func (g *Gemini) Analyze(ctx context.Context, fotoJPEG []byte, pais, estilo string) models.Analysis {
	ctx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return g.fallback("cliente indisponível", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"

	var resp *genai.GenerateContentResponse
	for attempt := 0; attempt <= 1; attempt++ {
		resp, err = model.GenerateContent(ctx,
			genai.Text(buildPrompt(pais, estilo)),
			genai.ImageData("jpeg", fotoJPEG),
		)
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return g.fallback("chamada ao modelo falhou", err)
	}

	raw := responseText(resp)
	var result models.Analysis
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return g.fallback("resposta do modelo não é JSON válido", err)
	}

	telemetry.Analyses.WithLabelValues("ok").Inc()
	return result
}

func (g *Gemini) fallback(motivo string, err error) models.Analysis {
	telemetry.Analyses.WithLabelValues("fallback").Inc()
	telemetry.Logger.Warn("análise em fallback", zap.String("motivo", motivo), zap.Error(err))
	return models.FallbackAnalysis()
}

func buildPrompt(pais, estilo string) string {
	return fmt.Sprintf(`Analise esta imagem de currículo de um jovem e retorne APENAS UM OBJETO JSON válido com:
{
  "area": "área profissional identificada",
  "resumo": "resumo profissional persuasivo (3 linhas)",
  "melhorias": ["melhoria1", "melhoria2", "melhoria3"],
  "palavras_chave": ["palavra1", "palavra2", "palavra3"],
  "cursos": ["curso1", "curso2"],
  "curriculo_organizado": "currículo completo reestruturado profissionalmente",
  "biografia": "biografia profissional editável sobre a trajetória do jovem (5 linhas)",
  "carta_recomendacao": "carta de recomendação personalizada com nome do jovem",
  "linkedin_titulo": "título profissional otimizado",
  "linkedin_resumo": "resumo curto para LinkedIn (3 linhas)"
}

Adapte para o país: %s. Estilo do currículo: %s.`, pais, estilo)
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	// Some model responses still arrive fenced even in JSON mode.
	out := strings.TrimSpace(sb.String())
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
