package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/database/postgres"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

const brandGraphTable = "brand_graph bg"

// BrandGraphRepository lê o grafo de marcas (concorrentes e embaixadores).
// Mesmo ciclo de vida da taxonomia: carga única na inicialização
type BrandGraphRepository interface {
	ListAll() ([]*domain.BrandIntel, error)
}

type brandGraphRepository struct {
	conn *postgres.Connection
}

func NewBrandGraphRepository(conn *postgres.Connection) BrandGraphRepository {
	return &brandGraphRepository{
		conn: conn,
	}
}

func (r *brandGraphRepository) ListAll() ([]*domain.BrandIntel, error) {
	query, args, err := squirrel.
		Select("bg.brand, bg.competitors, bg.ambassadors").
		From(brandGraphTable).
		OrderBy("bg.brand ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.BrandIntel{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	brands := make([]*domain.BrandIntel, 0)
	for rows.Next() {
		intel := &domain.BrandIntel{}
		var competitorsJSON, ambassadorsJSON []byte

		err := rows.Scan(&intel.Brand, &competitorsJSON, &ambassadorsJSON)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear marca: %w", err)
		}

		if competitorsJSON != nil {
			if err := json.Unmarshal(competitorsJSON, &intel.Competitors); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de concorrentes: %w", err)
			}
		}

		if ambassadorsJSON != nil {
			if err := json.Unmarshal(ambassadorsJSON, &intel.Ambassadors); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de embaixadores: %w", err)
			}
		}

		brands = append(brands, intel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return brands, nil
}
