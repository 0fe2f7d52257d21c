package domain

// BrandContext identifica a marca da campanha
type BrandContext struct {
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Category string `json:"category"`
}

// CreativeBrief carrega a intenção criativa extraída do briefing
type CreativeBrief struct {
	ToneTags  []string `json:"tone_tags"`
	ThemeTags []string `json:"theme_tags"`
}

// GenderSplitTarget é a distribuição de gênero desejada para a seleção.
// Percentuais de 0 a 100; a soma pode ser menor que 100 (resto indiferente)
type GenderSplitTarget struct {
	FemalePct float64 `json:"female_pct"`
	MalePct   float64 `json:"male_pct"`
}

// AgeRangeTarget é a faixa etária de audiência desejada
type AgeRangeTarget struct {
	MinAge int `json:"min_age"`
	MaxAge int `json:"max_age"`
}

// QualityThresholds são os cortes mínimos aplicados pelo filtro
type QualityThresholds struct {
	MinCredibility   float64  `json:"min_credibility"`    // 0-100
	MinSpainAudience float64  `json:"min_spain_audience"` // 0-100
	MinEngagement    *float64 `json:"min_engagement"`     // opcional, ex: 0.02
}

// CampaignQuery é a consulta estruturada produzida pelo parser de briefing.
// Imutável durante a execução de uma busca
type CampaignQuery struct {
	TargetCount    int                `json:"target_count"`
	GenderTarget   *GenderSplitTarget `json:"gender_target"`
	AgeTarget      *AgeRangeTarget    `json:"age_target"`
	Brand          *BrandContext      `json:"brand"`
	Creative       *CreativeBrief     `json:"creative"`
	CampaignNiche  string             `json:"campaign_niche"`
	TopicKeywords  []string           `json:"topic_keywords"`
	ExcludeNiches  []string           `json:"exclude_niches"`
	MinFollowers   int                `json:"min_followers"` // preferência, não corte absoluto
	MaxFollowers   int                `json:"max_followers"`
	Thresholds     QualityThresholds  `json:"thresholds"`
	Weights        *RankingWeights    `json:"weights"` // sugestão do parser, sujeita a clamp
	ExcludeRivals  bool               `json:"exclude_rivals"` // embaixadores de concorrentes fora
	Confidence     float64            `json:"confidence"`
	FallbackReason string             `json:"fallback_reason,omitempty"`
}

// SearchTerms reúne os termos úteis para busca textual no catálogo
func (q *CampaignQuery) SearchTerms() []string {
	terms := make([]string, 0, len(q.TopicKeywords)+1)
	if q.CampaignNiche != "" {
		terms = append(terms, q.CampaignNiche)
	}
	terms = append(terms, q.TopicKeywords...)
	return terms
}
