package domain

// ConflictSeverity classifica o quão grave é o conflito entre marcas
type ConflictSeverity string

const (
	SeverityHigh   ConflictSeverity = "high"
	SeverityMedium ConflictSeverity = "medium"
	SeverityLow    ConflictSeverity = "low"
)

// NicheRelation descreve como um nicho se relaciona com os demais na taxonomia.
// Dados de referência carregados uma vez na inicialização, somente leitura
type NicheRelation struct {
	Niche          string   `json:"niche"`
	Related        []string `json:"related"`
	Conflicting    []string `json:"conflicting"`
	ParentCategory string   `json:"parent_category"`
}

// AmbassadorStatus indica o vínculo atual entre um criador e uma marca
type AmbassadorStatus string

const (
	AmbassadorConfirmed AmbassadorStatus = "confirmed"
	AmbassadorFormer    AmbassadorStatus = "former"
	AmbassadorRumored   AmbassadorStatus = "rumored"
)

// Ambassador é um criador sabidamente associado a uma marca
type Ambassador struct {
	Username     string           `json:"username"`
	Status       AmbassadorStatus `json:"status"`
	Relationship string           `json:"relationship"`
	Niche        string           `json:"niche"`
}

// CompetitorBrand é uma marca concorrente, com a severidade do conflito
type CompetitorBrand struct {
	Name     string           `json:"name"`
	Severity ConflictSeverity `json:"severity"`
}

// BrandIntel agrupa o conhecimento de referência sobre uma marca
type BrandIntel struct {
	Brand       string            `json:"brand"`
	Competitors []CompetitorBrand `json:"competitors"`
	Ambassadors []Ambassador      `json:"ambassadors"`
}
