// Package briefing é a fronteira com o parser de briefings (um serviço
// externo baseado em LLM). O núcleo nunca recebe consulta ausente: falha ou
// baixa confiança do parser vira uma consulta de melhor esforço
package briefing

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

// minConfidence é o corte abaixo do qual a saída do parser é descartada
const minConfidence = 0.3

// Parser transforma o texto livre de um briefing em uma consulta estruturada.
// Colaborador externo: apenas a interface pertence a este serviço
type Parser interface {
	Parse(ctx context.Context, rawBrief string) (*domain.CampaignQuery, error)
}

// Resolver é o contrato visto pelo orquestrador da busca
type Resolver interface {
	Resolve(ctx context.Context, rawBrief string) *domain.CampaignQuery
}

// Service resolve a consulta final de uma busca: usa o parser quando ele
// responde com confiança suficiente e cai no fallback caso contrário
type Service struct {
	parser Parser
}

func NewService(parser Parser) *Service {
	return &Service{parser: parser}
}

// Resolve devolve sempre uma consulta utilizável. Erro do parser não é
// propagado: é rebaixado para warning e substituído pelo fallback
func (s *Service) Resolve(ctx context.Context, rawBrief string) *domain.CampaignQuery {
	if s.parser != nil {
		query, err := s.parser.Parse(ctx, rawBrief)
		if err != nil {
			logrus.WithError(err).Warn("briefing: parser failed, using fallback query")
		} else if query != nil && query.Confidence >= minConfidence {
			applyQueryDefaults(query)
			return query
		} else if query != nil {
			logrus.WithFields(logrus.Fields{
				"confidence": query.Confidence,
			}).Warn("briefing: low parser confidence, using fallback query")
		}
	}

	return FallbackQuery(rawBrief)
}

// FallbackQuery monta uma consulta de melhor esforço a partir do texto cru:
// busca por palavras-chave, sem marca nem brief criativo, limiares neutros
func FallbackQuery(rawBrief string) *domain.CampaignQuery {
	keywords := extractKeywords(rawBrief)

	return &domain.CampaignQuery{
		TargetCount:    10,
		TopicKeywords:  keywords,
		Thresholds:     domain.QualityThresholds{},
		Confidence:     0,
		FallbackReason: "parser indisponível ou com baixa confiança",
	}
}

func applyQueryDefaults(query *domain.CampaignQuery) {
	if query.TargetCount <= 0 {
		query.TargetCount = 10
	}
}

// extractKeywords pega as palavras mais longas do briefing como termos de
// busca. Heurística deliberadamente simples: o fallback só precisa devolver
// algo razoável quando o parser não está disponível
func extractKeywords(rawBrief string) []string {
	words := strings.FieldsFunc(strings.ToLower(rawBrief), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != 'ñ' && r != 'á' &&
			r != 'é' && r != 'í' && r != 'ó' && r != 'ú'
	})

	seen := make(map[string]bool)
	keywords := make([]string, 0, 8)
	for _, word := range words {
		if len(word) < 5 || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == 8 {
			break
		}
	}

	return keywords
}
