package ranking

import (
	"strconv"
	"strings"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/intelligence"
	"github.com/Jrogbaaa/Project-X-sub000/pkg/utils"
)

// neutralScore é o valor usado quando não há dado nem alvo para avaliar um
// fator: não premia nem pune
const neutralScore = 0.5

// Referências de normalização dos fatores contínuos
const (
	engagementCeiling = 0.15 // taxa de engajamento que já vale score cheio
	growthOffset      = 0.20 // desloca crescimento para acomodar taxas negativas
	growthSpan        = 0.70
)

// Scores do fator de nicho por afinidade taxonômica
const (
	nicheExactScore       = 0.95
	nicheRelatedScore     = 0.70
	nicheConflictScore    = 0.20
	nicheCelebrityPenalty = 0.15 // conflito + alcance de celebridade
)

// Scores do fator de afinidade de marca
const (
	brandMentionBoost    = 0.75
	brandSaturationScore = 0.40 // já é embaixador da própria marca: abre espaço para talento novo
)

// ScoreCandidate calcula os oito fatores normalizados em [0,1]
func (s *Service) ScoreCandidate(creator *domain.Creator, query *domain.CampaignQuery) domain.SubScores {
	return domain.SubScores{
		Credibility:   credibilityScore(creator),
		Engagement:    engagementScore(creator),
		AudienceMatch: audienceMatchScore(creator, query),
		Growth:        growthScore(creator),
		Geography:     geographyScore(creator),
		BrandAffinity: s.brandAffinityScore(creator, query),
		CreativeFit:   s.creativeFitScore(creator, query),
		NicheMatch:    s.nicheMatchScore(creator, query),
	}
}

func credibilityScore(creator *domain.Creator) float64 {
	if creator.Metrics == nil || creator.Metrics.Credibility == nil {
		return neutralScore
	}
	return utils.Clamp01(*creator.Metrics.Credibility / 100)
}

func engagementScore(creator *domain.Creator) float64 {
	if creator.Metrics == nil || creator.Metrics.EngagementRate == nil {
		return neutralScore
	}
	return utils.Clamp01(*creator.Metrics.EngagementRate / engagementCeiling)
}

func growthScore(creator *domain.Creator) float64 {
	if creator.Metrics == nil || creator.Metrics.GrowthRate6M == nil {
		return neutralScore
	}
	return utils.Clamp01((*creator.Metrics.GrowthRate6M + growthOffset) / growthSpan)
}

func geographyScore(creator *domain.Creator) float64 {
	spain := creator.SpainAudience()
	if spain == nil {
		return neutralScore
	}
	return utils.Clamp01(*spain / 100)
}

// audienceMatchScore é a média do encaixe de gênero e do encaixe etário, cada
// um avaliado apenas quando o alvo correspondente existe na campanha
func audienceMatchScore(creator *domain.Creator, query *domain.CampaignQuery) float64 {
	genderFit := neutralScore
	if query.GenderTarget != nil {
		genderFit = genderFitScore(creator, query.GenderTarget)
	}

	ageFit := neutralScore
	if query.AgeTarget != nil {
		ageFit = ageFitScore(creator, query.AgeTarget)
	}

	return (genderFit + ageFit) / 2
}

func genderFitScore(creator *domain.Creator, target *domain.GenderSplitTarget) float64 {
	if creator.Metrics == nil || len(creator.Metrics.GenderSplit) == 0 {
		return neutralScore
	}

	female, ok := creator.Metrics.GenderSplit["female"]
	if !ok {
		male, hasMale := creator.Metrics.GenderSplit["male"]
		if !hasMale {
			return neutralScore
		}
		female = 100 - male
	}

	diff := female - target.FemalePct
	if diff < 0 {
		diff = -diff
	}
	return utils.Clamp01(1 - diff/100)
}

// ageFitScore soma os pesos dos buckets etários da audiência que intersectam
// a faixa alvo
func ageFitScore(creator *domain.Creator, target *domain.AgeRangeTarget) float64 {
	if creator.Metrics == nil || len(creator.Metrics.AgeGroups) == 0 {
		return neutralScore
	}

	overlap := 0.0
	for bucket, weight := range creator.Metrics.AgeGroups {
		low, high, ok := parseAgeBucket(bucket)
		if !ok {
			continue
		}
		if high >= target.MinAge && (target.MaxAge <= 0 || low <= target.MaxAge) {
			overlap += weight
		}
	}

	return utils.Clamp01(overlap / 100)
}

// parseAgeBucket interpreta buckets no formato "18-24" ou "65+"
func parseAgeBucket(bucket string) (int, int, bool) {
	if strings.HasSuffix(bucket, "+") {
		low, err := strconv.Atoi(strings.TrimSuffix(bucket, "+"))
		if err != nil {
			return 0, 0, false
		}
		return low, 200, true
	}

	parts := strings.SplitN(bucket, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	low, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	high, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return low, high, true
}

// brandAffinityScore avalia a relação do criador com a marca da campanha:
// menção prévia sobe, conflito com concorrente derruba conforme a severidade
// e embaixador da própria marca satura (talento novo primeiro)
func (s *Service) brandAffinityScore(creator *domain.Creator, query *domain.CampaignQuery) float64 {
	if query.Brand == nil || query.Brand.Name == "" {
		return neutralScore
	}

	if competitor, conflicted := s.intel.CompetitorConflict(query.Brand.Name, creator.Username); conflicted {
		switch competitor.Severity {
		case domain.SeverityHigh:
			return 0.05
		case domain.SeverityMedium:
			return 0.15
		default:
			return 0.30
		}
	}

	if competitor := s.competitorMention(creator, query.Brand.Name); competitor != nil {
		switch competitor.Severity {
		case domain.SeverityHigh:
			return 0.25
		case domain.SeverityMedium:
			return 0.35
		default:
			return 0.45
		}
	}

	if s.intel.IsBrandAmbassador(query.Brand.Name, creator.Username) {
		return brandSaturationScore
	}

	if mentionsBrand(creator, query.Brand) {
		return brandMentionBoost
	}

	return neutralScore
}

// competitorMention procura menção textual a alguma concorrente no bio ou
// nas tags do criador — conflito mais brando que embaixadorado confirmado
func (s *Service) competitorMention(creator *domain.Creator, brand string) *domain.CompetitorBrand {
	intel, ok := s.intel.BrandIntel(brand)
	if !ok {
		return nil
	}

	for i := range intel.Competitors {
		competitor := &intel.Competitors[i]
		if mentionsText(creator, competitor.Name) {
			return competitor
		}
	}

	return nil
}

func mentionsBrand(creator *domain.Creator, brand *domain.BrandContext) bool {
	if mentionsText(creator, brand.Name) {
		return true
	}
	return brand.Handle != "" && mentionsText(creator, brand.Handle)
}

func mentionsText(creator *domain.Creator, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}

	if creator.Bio != nil && strings.Contains(strings.ToLower(*creator.Bio), term) {
		return true
	}

	for _, interest := range creator.Interests {
		if strings.Contains(strings.ToLower(interest), term) {
			return true
		}
	}
	return false
}

// creativeFitScore mistura a sobreposição com temas (40%), com tom (30%) e o
// sinal binário de experiência prévia com a marca (30%)
func (s *Service) creativeFitScore(creator *domain.Creator, query *domain.CampaignQuery) float64 {
	if query.Creative == nil || (len(query.Creative.ThemeTags) == 0 && len(query.Creative.ToneTags) == 0) {
		return neutralScore
	}

	themeOverlap := tagOverlap(creator, query.Creative.ThemeTags)
	toneOverlap := tagOverlap(creator, query.Creative.ToneTags)

	experience := 0.0
	if query.Brand != nil && query.Brand.Name != "" {
		if s.hasBrandExperience(creator, query.Brand) {
			experience = 1.0
		}
	}

	return utils.Clamp01(0.4*themeOverlap + 0.3*toneOverlap + 0.3*experience)
}

// hasBrandExperience considera experiência prévia tanto o embaixadorado (em
// qualquer status) quanto a menção à marca no perfil
func (s *Service) hasBrandExperience(creator *domain.Creator, brand *domain.BrandContext) bool {
	intel, ok := s.intel.BrandIntel(brand.Name)
	if ok {
		for _, ambassador := range intel.Ambassadors {
			if strings.EqualFold(ambassador.Username, creator.Username) {
				return true
			}
		}
	}

	return mentionsBrand(creator, brand)
}

// tagOverlap calcula a fração das tags da campanha presentes no perfil do
// criador. Sem tags para comparar, devolve neutro
func tagOverlap(creator *domain.Creator, tags []string) float64 {
	if len(tags) == 0 {
		return neutralScore
	}

	matched := 0
	for _, tag := range tags {
		if mentionsText(creator, tag) {
			matched++
		}
	}

	return float64(matched) / float64(len(tags))
}

// nicheMatchScore consulta a taxonomia quando a campanha tem nicho definido.
// Conflito taxonômico com alcance de celebridade é o pior caso: conta enorme
// do nicho errado nunca deve ranquear alto
func (s *Service) nicheMatchScore(creator *domain.Creator, query *domain.CampaignQuery) float64 {
	if query.CampaignNiche == "" {
		return nicheKeywordFallback(creator, query)
	}

	creatorNiche := creator.NicheName()
	if creatorNiche == "" {
		return neutralScore
	}

	switch s.intel.Affinity(query.CampaignNiche, creatorNiche) {
	case intelligence.AffinityExact:
		return nicheExactScore
	case intelligence.AffinityRelated:
		return nicheRelatedScore
	case intelligence.AffinityConflicting:
		if creator.FollowerCount > s.config.CelebrityFollowerThreshold {
			return nicheCelebrityPenalty
		}
		return nicheConflictScore
	default:
		return neutralScore
	}
}

// nicheKeywordFallback pontua por sobreposição de palavras-chave quando a
// campanha não definiu nicho
func nicheKeywordFallback(creator *domain.Creator, query *domain.CampaignQuery) float64 {
	score := neutralScore

	if creator.HasAnyInterest(query.TopicKeywords) {
		score += 0.3
	}
	if creator.HasAnyInterest(query.ExcludeNiches) {
		score -= 0.3
	}

	return utils.Clamp01(score)
}
