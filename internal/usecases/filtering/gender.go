package filtering

import (
	"strings"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

// Corte da heurística inversa: audiência fortemente enviesada para um gênero
// sugere criador do gênero oposto (padrão recorrente em contas de lifestyle)
const inverseAudienceCutoff = 65.0

// Dicionários de primeiros nomes usados como um dos sinais de inferência.
// Cobertura parcial é aceitável: nome fora da lista só significa "sem voto"
var femaleFirstNames = map[string]bool{
	"maria": true, "carmen": true, "lucia": true, "sofia": true, "paula": true,
	"laura": true, "marta": true, "ana": true, "sara": true, "elena": true,
	"claudia": true, "andrea": true, "alba": true, "julia": true, "noelia": true,
	"cristina": true, "patricia": true, "raquel": true, "beatriz": true, "irene": true,
	"natalia": true, "silvia": true, "rocio": true, "alicia": true, "eva": true,
}

var maleFirstNames = map[string]bool{
	"jose": true, "antonio": true, "manuel": true, "francisco": true, "david": true,
	"juan": true, "javier": true, "daniel": true, "carlos": true, "miguel": true,
	"alejandro": true, "pablo": true, "pedro": true, "sergio": true, "jorge": true,
	"alberto": true, "luis": true, "alvaro": true, "diego": true, "adrian": true,
	"raul": true, "ivan": true, "ruben": true, "oscar": true, "hugo": true,
}

var femaleBioKeywords = []string{"madre", "mamá", "mama", "chica", "mujer", "ella", "actriz", "creadora", "influencer femenina"}
var maleBioKeywords = []string{"padre", "papá", "papa", "chico", "hombre", "él", "actor", "creador", "futbolista"}

// checkCreatorGender aplica o filtro de gênero do criador quando a campanha
// pede uma seleção exclusiva de um gênero. Gênero indeterminado passa: a
// incerteza não reprova ninguém
func (s *Service) checkCreatorGender(creator *domain.Creator, query *domain.CampaignQuery) string {
	if query.GenderTarget == nil {
		return ""
	}

	var required string
	switch {
	case query.GenderTarget.FemalePct >= 100:
		required = "female"
	case query.GenderTarget.MalePct >= 100:
		required = "male"
	default:
		// Split misto não exclui ninguém individualmente
		return ""
	}

	inferred := InferCreatorGender(creator)
	if inferred == "" || inferred == required {
		return ""
	}

	return domain.RejectionCreatorGender
}

// InferCreatorGender combina três sinais independentes — heurística inversa
// da audiência, varredura do bio e dicionário de primeiros nomes — por
// maioria simples. Empate ou ausência de votos resulta em desconhecido
func InferCreatorGender(creator *domain.Creator) string {
	if creator.Gender != nil && *creator.Gender != "" {
		return strings.ToLower(*creator.Gender)
	}

	femaleVotes, maleVotes := 0, 0

	if vote := audienceInverseVote(creator); vote != "" {
		countVote(vote, &femaleVotes, &maleVotes)
	}

	if vote := bioKeywordVote(creator); vote != "" {
		countVote(vote, &femaleVotes, &maleVotes)
	}

	if vote := firstNameVote(creator); vote != "" {
		countVote(vote, &femaleVotes, &maleVotes)
	}

	switch {
	case femaleVotes > maleVotes:
		return "female"
	case maleVotes > femaleVotes:
		return "male"
	default:
		return ""
	}
}

func countVote(vote string, femaleVotes, maleVotes *int) {
	if vote == "female" {
		*femaleVotes++
	} else {
		*maleVotes++
	}
}

func audienceInverseVote(creator *domain.Creator) string {
	if creator.Metrics == nil || len(creator.Metrics.GenderSplit) == 0 {
		return ""
	}

	if creator.Metrics.GenderSplit["male"] >= inverseAudienceCutoff {
		return "female"
	}
	if creator.Metrics.GenderSplit["female"] >= inverseAudienceCutoff {
		return "male"
	}
	return ""
}

func bioKeywordVote(creator *domain.Creator) string {
	if creator.Bio == nil {
		return ""
	}
	bio := strings.ToLower(*creator.Bio)

	for _, keyword := range femaleBioKeywords {
		if strings.Contains(bio, keyword) {
			return "female"
		}
	}
	for _, keyword := range maleBioKeywords {
		if strings.Contains(bio, keyword) {
			return "male"
		}
	}
	return ""
}

func firstNameVote(creator *domain.Creator) string {
	first := normalize(strings.SplitN(creator.DisplayName, " ", 2)[0])
	if first == "" {
		return ""
	}

	if femaleFirstNames[first] {
		return "female"
	}
	if maleFirstNames[first] {
		return "male"
	}
	return ""
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
