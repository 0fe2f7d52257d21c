package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/database/postgres"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

const nicheTaxonomyTable = "niche_taxonomy nt"

// NicheTaxonomyRepository lê a taxonomia de nichos. Dados de referência:
// carregados integralmente uma vez na inicialização do processo
type NicheTaxonomyRepository interface {
	ListAll() ([]*domain.NicheRelation, error)
}

type nicheTaxonomyRepository struct {
	conn *postgres.Connection
}

func NewNicheTaxonomyRepository(conn *postgres.Connection) NicheTaxonomyRepository {
	return &nicheTaxonomyRepository{
		conn: conn,
	}
}

func (r *nicheTaxonomyRepository) ListAll() ([]*domain.NicheRelation, error) {
	query, args, err := squirrel.
		Select("nt.niche, nt.related, nt.conflicting, nt.parent_category").
		From(nicheTaxonomyTable).
		OrderBy("nt.niche ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.NicheRelation{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	relations := make([]*domain.NicheRelation, 0)
	for rows.Next() {
		relation := &domain.NicheRelation{}
		var related, conflicting pq.StringArray

		err := rows.Scan(&relation.Niche, &related, &conflicting, &relation.ParentCategory)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relação de nicho: %w", err)
		}

		relation.Related = []string(related)
		relation.Conflicting = []string(conflicting)
		relations = append(relations, relation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return relations, nil
}
