package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestCreator_Key(t *testing.T) {
	creator := &Creator{Platform: "instagram", Username: "MariaFit"}
	assert.Equal(t, "instagram:mariafit", creator.Key())
}

func TestCreator_IsVerified(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	window := 168 * time.Hour

	recent := now.Add(-24 * time.Hour)
	expired := now.Add(-200 * time.Hour)

	tests := []struct {
		name    string
		creator Creator
		want    bool
	}{
		{
			name: "Métricas completas e recentes",
			creator: Creator{
				Metrics:         &CreatorMetrics{Credibility: floatPtr(80)},
				MetricsComplete: true,
				VerifiedAt:      &recent,
			},
			want: true,
		},
		{
			name: "Métricas fora da janela de frescor",
			creator: Creator{
				Metrics:         &CreatorMetrics{Credibility: floatPtr(80)},
				MetricsComplete: true,
				VerifiedAt:      &expired,
			},
			want: false,
		},
		{
			name: "Métricas incompletas nunca valem como verificadas",
			creator: Creator{
				Metrics:         &CreatorMetrics{},
				MetricsComplete: false,
				VerifiedAt:      &recent,
			},
			want: false,
		},
		{
			name:    "Sem verificação anterior",
			creator: Creator{MetricsComplete: true, Metrics: &CreatorMetrics{}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.creator.IsVerified(window, now))
		})
	}
}

func TestCreator_SpainAudience(t *testing.T) {
	t.Run("Sem breakdown geográfico retorna nil", func(t *testing.T) {
		creator := &Creator{Metrics: &CreatorMetrics{}}
		assert.Nil(t, creator.SpainAudience())
	})

	t.Run("Breakdown presente sem Espanha retorna zero", func(t *testing.T) {
		creator := &Creator{Metrics: &CreatorMetrics{
			GeoCountries: map[string]float64{"MX": 60, "AR": 40},
		}}
		spain := creator.SpainAudience()
		assert.NotNil(t, spain)
		assert.Zero(t, *spain)
	})

	t.Run("Percentual da Espanha quando presente", func(t *testing.T) {
		creator := &Creator{Metrics: &CreatorMetrics{
			GeoCountries: map[string]float64{"ES": 45.5},
		}}
		spain := creator.SpainAudience()
		assert.NotNil(t, spain)
		assert.Equal(t, 45.5, *spain)
	})
}

func TestCreator_HasAnyInterest(t *testing.T) {
	creator := &Creator{Interests: []string{"Fitness", "vida sana", "running"}}

	assert.True(t, creator.HasAnyInterest([]string{"fitness"}))
	assert.True(t, creator.HasAnyInterest([]string{"fitness femenino"})) // substring nos dois sentidos
	assert.True(t, creator.HasAnyInterest([]string{"moda", "RUNNING"}))
	assert.False(t, creator.HasAnyInterest([]string{"gastronomia"}))
	assert.False(t, creator.HasAnyInterest(nil))
	assert.False(t, creator.HasAnyInterest([]string{"  "}))
}

func TestSortRankedResults(t *testing.T) {
	results := []*RankedResult{
		{Creator: &Creator{Username: "bruna", FollowerCount: 5000}, RelevanceScore: 0.70},
		{Creator: &Creator{Username: "carla", FollowerCount: 9000}, RelevanceScore: 0.85},
		{Creator: &Creator{Username: "alice", FollowerCount: 9000}, RelevanceScore: 0.85},
		{Creator: &Creator{Username: "diego", FollowerCount: 20000}, RelevanceScore: 0.85},
	}

	SortRankedResults(results)

	// Score decrescente, depois seguidores decrescentes, depois username
	assert.Equal(t, "diego", results[0].Creator.Username)
	assert.Equal(t, "alice", results[1].Creator.Username)
	assert.Equal(t, "carla", results[2].Creator.Username)
	assert.Equal(t, "bruna", results[3].Creator.Username)

	for i, r := range results {
		assert.Equal(t, i+1, r.Position)
	}
}
