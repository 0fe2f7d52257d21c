package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/database/postgres"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

const (
	creatorsTable   = "creators c"
	creatorsColumns = `c.platform, c.username, c.display_name, c.follower_count, c.interests,
		c.primary_niche, c.niche_confidence, c.metrics, c.country, c.bio, c.gender,
		c.external_id, c.verified_at, c.metrics_complete, c.active`
)

// CreatorRepository é o acesso ao catálogo local de criadores.
// O pipeline só lê durante uma busca; a única escrita é a atualização de
// métricas após verificação bem sucedida
type CreatorRepository interface {
	ListByNiche(niche string, limit int) ([]*domain.Creator, error)
	ListByKeywords(keywords []string, limit int) ([]*domain.Creator, error)
	ListActive(limit int) ([]*domain.Creator, error)
	ListStaleVerified(olderThan time.Time, limit int) ([]*domain.Creator, error)
	UpdateMetrics(creator *domain.Creator) error
}

type creatorRepository struct {
	conn *postgres.Connection
}

func NewCreatorRepository(conn *postgres.Connection) CreatorRepository {
	return &creatorRepository{
		conn: conn,
	}
}

func (r *creatorRepository) ListByNiche(niche string, limit int) ([]*domain.Creator, error) {
	query, args, err := squirrel.
		Select(creatorsColumns).
		From(creatorsTable).
		Where(squirrel.Eq{"c.active": true}).
		Where("LOWER(c.primary_niche) = LOWER(?)", niche).
		OrderBy("c.follower_count DESC, c.username ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listCreators(query, args...)
}

func (r *creatorRepository) ListByKeywords(keywords []string, limit int) ([]*domain.Creator, error) {
	if len(keywords) == 0 {
		return []*domain.Creator{}, nil
	}

	// Busca por interseção entre as tags do criador e os termos da campanha.
	// As tags são armazenadas já normalizadas em minúsculas na ingestão
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		lowered = append(lowered, strings.ToLower(k))
	}

	query, args, err := squirrel.
		Select(creatorsColumns).
		From(creatorsTable).
		Where(squirrel.Eq{"c.active": true}).
		Where("c.interests && ?", pq.Array(lowered)).
		OrderBy("c.follower_count DESC, c.username ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listCreators(query, args...)
}

func (r *creatorRepository) ListActive(limit int) ([]*domain.Creator, error) {
	query, args, err := squirrel.
		Select(creatorsColumns).
		From(creatorsTable).
		Where(squirrel.Eq{"c.active": true}).
		OrderBy("c.follower_count DESC, c.username ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listCreators(query, args...)
}

func (r *creatorRepository) ListStaleVerified(olderThan time.Time, limit int) ([]*domain.Creator, error) {
	query, args, err := squirrel.
		Select(creatorsColumns).
		From(creatorsTable).
		Where(squirrel.Eq{"c.active": true, "c.metrics_complete": true}).
		Where(squirrel.Lt{"c.verified_at": olderThan}).
		OrderBy("c.verified_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listCreators(query, args...)
}

func (r *creatorRepository) UpdateMetrics(creator *domain.Creator) error {
	var metricsJSON []byte
	var err error

	if creator.Metrics != nil {
		metricsJSON, err = json.Marshal(creator.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	update := squirrel.
		Update("creators").
		Set("metrics", metricsJSON).
		Set("follower_count", creator.FollowerCount).
		Set("external_id", creator.ExternalID).
		Set("verified_at", creator.VerifiedAt).
		Set("metrics_complete", creator.MetricsComplete).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"platform": creator.Platform, "username": creator.Username}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *creatorRepository) listCreators(query string, args ...interface{}) ([]*domain.Creator, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Creator{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	creators := make([]*domain.Creator, 0)
	for rows.Next() {
		creator, err := r.scanCreator(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear criador: %w", err)
		}
		creators = append(creators, creator)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return creators, nil
}

func (r *creatorRepository) scanCreator(rows *sql.Rows) (*domain.Creator, error) {
	creator := &domain.Creator{}
	var interests pq.StringArray
	var nicheName sql.NullString
	var nicheConfidence sql.NullFloat64
	var metricsJSON []byte

	err := rows.Scan(
		&creator.Platform,
		&creator.Username,
		&creator.DisplayName,
		&creator.FollowerCount,
		&interests,
		&nicheName,
		&nicheConfidence,
		&metricsJSON,
		&creator.Country,
		&creator.Bio,
		&creator.Gender,
		&creator.ExternalID,
		&creator.VerifiedAt,
		&creator.MetricsComplete,
		&creator.Active,
	)
	if err != nil {
		return nil, err
	}

	creator.Interests = []string(interests)

	if nicheName.Valid && nicheName.String != "" {
		creator.PrimaryNiche = &domain.NicheClassification{
			Niche:      nicheName.String,
			Confidence: nicheConfidence.Float64,
		}
	}

	if metricsJSON != nil {
		metrics := &domain.CreatorMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		creator.Metrics = metrics
	}

	return creator, nil
}
