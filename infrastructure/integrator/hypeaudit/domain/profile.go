package domain

// ProfileSummary é um resultado da busca textual de perfis no HypeAudit
type ProfileSummary struct {
	ID        string `json:"id"` // token de consulta direta do relatório
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Followers int    `json:"followers"`
}

// WeightedBucket é uma fatia percentual de audiência (gênero, idade ou país)
type WeightedBucket struct {
	Code   string  `json:"code"`
	Weight float64 `json:"weight"` // 0-1 no formato do provedor
}

// ProfileReport é o relatório completo de métricas de um perfil.
// Campos de métrica são ponteiros: o provedor omite o que não conseguiu medir
type ProfileReport struct {
	ID               string           `json:"id"`
	Username         string           `json:"username"`
	FullName         string           `json:"full_name"`
	Followers        int              `json:"followers"`
	AQS              *float64         `json:"aqs"`                // audience quality score, 0-100
	EngagementRate   *float64         `json:"engagement_rate"`    // ex: 0.045
	FollowerGrowth6M *float64         `json:"follower_growth_6m"` // pode ser negativo
	AudienceGenders  []WeightedBucket `json:"audience_genders"`
	AudienceAges     []WeightedBucket `json:"audience_ages"`
	AudienceGeo      []WeightedBucket `json:"audience_geo"`
}
