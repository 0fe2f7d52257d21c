package domain

import (
	"fmt"
	"math"
)

const (
	// Tolerância para a soma dos pesos (erros de arredondamento do parser)
	weightSumTolerance = 0.01

	// Sugestões com variância abaixo disso são quase uniformes e não
	// carregam informação útil: descartamos e ficamos com o default
	uniformVarianceThreshold = 0.005
)

// RankingWeights são os pesos dos oito fatores do score de relevância.
// Valor imutável: valide na construção e passe explicitamente ao ranking
type RankingWeights struct {
	Engagement    float64 `json:"engagement"`
	Credibility   float64 `json:"credibility"`
	AudienceMatch float64 `json:"audience_match"`
	BrandAffinity float64 `json:"brand_affinity"`
	CreativeFit   float64 `json:"creative_fit"`
	Geography     float64 `json:"geography"`
	Growth        float64 `json:"growth"`
	NicheMatch    float64 `json:"niche_match"`
}

// DefaultRankingWeights retorna os pesos padrão calibrados manualmente
func DefaultRankingWeights() RankingWeights {
	return RankingWeights{
		Engagement:    0.20,
		Credibility:   0.15,
		AudienceMatch: 0.15,
		BrandAffinity: 0.15,
		CreativeFit:   0.15,
		Geography:     0.10,
		Growth:        0.05,
		NicheMatch:    0.05,
	}
}

func (w RankingWeights) values() [8]float64 {
	return [8]float64{
		w.Engagement, w.Credibility, w.AudienceMatch, w.BrandAffinity,
		w.CreativeFit, w.Geography, w.Growth, w.NicheMatch,
	}
}

// Sum retorna a soma dos oito pesos
func (w RankingWeights) Sum() float64 {
	total := 0.0
	for _, v := range w.values() {
		total += v
	}
	return total
}

// Validate garante pesos não negativos somando 1.0 (com tolerância)
func (w RankingWeights) Validate() error {
	for _, v := range w.values() {
		if v < 0 {
			return fmt.Errorf("peso negativo não permitido: %+v", w)
		}
	}
	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return fmt.Errorf("pesos devem somar 1.0, soma atual: %.4f", w.Sum())
	}
	return nil
}

// variance calcula a variância dos pesos (para detectar sugestões uniformes)
func (w RankingWeights) variance() float64 {
	vals := w.values()
	mean := w.Sum() / float64(len(vals))
	variance := 0.0
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
	}
	return variance / float64(len(vals))
}

// MergeSuggestion aplica uma sugestão de pesos vinda do parser sobre os
// pesos base, com regras de proteção:
//   - sugestão inválida ou quase uniforme é descartada por inteiro
//   - fator com peso base zero permanece zero
//   - o peso de nicho só pode aumentar em relação ao base
//
// O resultado é renormalizado para somar 1.0
func (w RankingWeights) MergeSuggestion(suggestion *RankingWeights) RankingWeights {
	if suggestion == nil {
		return w
	}
	if err := suggestion.Validate(); err != nil {
		return w
	}
	if suggestion.variance() < uniformVarianceThreshold {
		return w
	}

	merged := *suggestion

	if w.Engagement == 0 {
		merged.Engagement = 0
	}
	if w.Credibility == 0 {
		merged.Credibility = 0
	}
	if w.AudienceMatch == 0 {
		merged.AudienceMatch = 0
	}
	if w.BrandAffinity == 0 {
		merged.BrandAffinity = 0
	}
	if w.CreativeFit == 0 {
		merged.CreativeFit = 0
	}
	if w.Geography == 0 {
		merged.Geography = 0
	}
	if w.Growth == 0 {
		merged.Growth = 0
	}
	if merged.NicheMatch < w.NicheMatch {
		merged.NicheMatch = w.NicheMatch
	}

	total := merged.Sum()
	if total <= 0 {
		return w
	}

	merged.Engagement /= total
	merged.Credibility /= total
	merged.AudienceMatch /= total
	merged.BrandAffinity /= total
	merged.CreativeFit /= total
	merged.Geography /= total
	merged.Growth /= total
	merged.NicheMatch /= total

	return merged
}
