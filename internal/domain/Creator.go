package domain

import (
	"strings"
	"time"
)

// NicheClassification é a classificação de nicho primário de um criador,
// produzida durante a ingestão do catálogo (com score de confiança)
type NicheClassification struct {
	Niche      string  `json:"niche"`
	Confidence float64 `json:"confidence"`
}

// CreatorMetrics agrupa as métricas de audiência obtidas do provedor externo.
// Cada campo é independentemente anulável: o provedor pode retornar perfis
// incompletos e o restante do pipeline precisa tratar ausência como "desconhecido"
type CreatorMetrics struct {
	Credibility    *float64           `json:"credibility"`     // 0-100
	EngagementRate *float64           `json:"engagement_rate"` // ex: 0.045 = 4.5%
	GrowthRate6M   *float64           `json:"growth_rate_6m"`  // pode ser negativo
	GenderSplit    map[string]float64 `json:"gender_split"`    // "female"/"male" -> %
	AgeGroups      map[string]float64 `json:"age_groups"`      // "18-24" -> %
	GeoCountries   map[string]float64 `json:"geo_countries"`   // "ES" -> %
}

// Creator é o registro de um criador no catálogo local
type Creator struct {
	Platform        string               `json:"platform"`
	Username        string               `json:"username"`
	DisplayName     string               `json:"display_name"`
	FollowerCount   int                  `json:"follower_count"` // 0 = desconhecido
	Interests       []string             `json:"interests"`
	PrimaryNiche    *NicheClassification `json:"primary_niche"`
	Metrics         *CreatorMetrics      `json:"metrics"`
	Country         *string              `json:"country"` // fallback grosseiro quando não há breakdown geográfico
	Bio             *string              `json:"bio"`
	Gender          *string              `json:"gender"`
	ExternalID      *string              `json:"external_id"` // token de re-consulta direta no provedor
	VerifiedAt      *time.Time           `json:"verified_at"`
	MetricsComplete bool                 `json:"metrics_complete"`
	Active          bool                 `json:"active"`
}

// Key identifica unicamente um criador dentro de uma plataforma
func (c *Creator) Key() string {
	return c.Platform + ":" + strings.ToLower(c.Username)
}

// IsVerified informa se o criador possui métricas completas e recentes.
// Um criador é "verificado" apenas dentro da janela de frescor: métricas
// antigas voltam ao estado não verificado e precisam de nova consulta
func (c *Creator) IsVerified(freshness time.Duration, now time.Time) bool {
	if !c.MetricsComplete || c.Metrics == nil || c.VerifiedAt == nil {
		return false
	}
	return now.Sub(*c.VerifiedAt) <= freshness
}

// SpainAudience retorna o percentual de audiência na Espanha, se conhecido
func (c *Creator) SpainAudience() *float64 {
	if c.Metrics == nil || len(c.Metrics.GeoCountries) == 0 {
		return nil
	}
	if pct, ok := c.Metrics.GeoCountries["ES"]; ok {
		return &pct
	}
	zero := 0.0
	return &zero
}

// HasAnyInterest informa se alguma tag do criador bate com os termos informados
// (comparação por substring, sem diferenciar maiúsculas)
func (c *Creator) HasAnyInterest(terms []string) bool {
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		for _, interest := range c.Interests {
			interest = strings.ToLower(interest)
			if strings.Contains(interest, term) || strings.Contains(term, interest) {
				return true
			}
		}
	}
	return false
}

// NicheName retorna o nicho primário normalizado ou vazio quando não classificado
func (c *Creator) NicheName() string {
	if c.PrimaryNiche == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.PrimaryNiche.Niche))
}
