package domain

import "sync"

// Motivos de rejeição registrados no funil de verificação
const (
	RejectionCredibility        = "credibility_below_threshold"
	RejectionSpainAudience      = "spain_audience_below_threshold"
	RejectionEngagement         = "engagement_below_threshold"
	RejectionAudienceGender     = "audience_gender_mismatch"
	RejectionFollowerRange      = "follower_count_out_of_range"
	RejectionCreatorGender      = "creator_gender_mismatch"
	RejectionExcludedNiche      = "excluded_niche"
	RejectionCompetitorRelation = "competitor_ambassador"
	RejectionMissingData        = "missing_required_data"
)

// VerificationStats acumula os contadores do funil de uma busca.
// Criado por execução e descartado após montar a resposta. Workers de
// verificação escrevem concorrentemente, por isso o mutex
type VerificationStats struct {
	mu sync.Mutex

	TotalCandidates    int            `json:"total_candidates"`
	Preselected        int            `json:"preselected"`
	AlreadyFresh       int            `json:"already_fresh"`
	Verified           int            `json:"verified"`
	FailedVerification int            `json:"failed_verification"`
	PassedFilters      int            `json:"passed_filters"`
	ExternalCalls      int            `json:"external_calls"`
	RejectionReasons   map[string]int `json:"rejection_reasons"`
}

func NewVerificationStats() *VerificationStats {
	return &VerificationStats{
		RejectionReasons: make(map[string]int),
	}
}

// AddVerified registra uma verificação bem sucedida
func (s *VerificationStats) AddVerified(calls int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Verified++
	s.ExternalCalls += calls
}

// AddFailed registra uma tentativa de verificação falha
func (s *VerificationStats) AddFailed(calls int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailedVerification++
	s.ExternalCalls += calls
}

// AddRejection registra uma rejeição do filtro com o motivo
func (s *VerificationStats) AddRejection(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RejectionReasons[reason]++
}
