package models

// Analysis is the structured result produced by the résumé analyzer.
// Field names follow the JSON contract consumed by the mobile and web apps.
type Analysis struct {
	Area                string   `json:"area"`
	Resumo              string   `json:"resumo"`
	Melhorias           []string `json:"melhorias"`
	PalavrasChave       []string `json:"palavras_chave"`
	Cursos              []string `json:"cursos"`
	CurriculoOrganizado string   `json:"curriculo_organizado"`
	Biografia           string   `json:"biografia"`
	CartaRecomendacao   string   `json:"carta_recomendacao"`
	LinkedinTitulo      string   `json:"linkedin_titulo"`
	LinkedinResumo      string   `json:"linkedin_resumo"`
}

// FallbackAnalysis is returned whenever the analyzer is unreachable or
// answers with something unparseable. Callers never see the upstream failure.
func FallbackAnalysis() Analysis {
	return Analysis{
		Area:                "Não identificada",
		Resumo:              "Erro na análise",
		Melhorias:           []string{"Tente novamente com foto mais nítida"},
		PalavrasChave:       []string{"emprego", "carreira"},
		Cursos:              []string{"Procure cursos na sua área"},
		CurriculoOrganizado: "Erro ao gerar currículo",
		Biografia:           "Erro ao gerar biografia",
		CartaRecomendacao:   "Erro ao gerar carta",
		LinkedinTitulo:      "Profissional dedicado",
		LinkedinResumo:      "Em busca de oportunidades",
	}
}
