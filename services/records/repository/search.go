package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fichaescolar/domain"
)

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(database *gorm.DB) domain.SearchRepo {
	return &searchRepository{
		db: database,
	}
}

// SearchStudents builds one read for the whole criteria set. Criteria
// compose with AND; the free-text term OR-matches across name, surnames,
// DNI and address. The housing condition is a join-level predicate, so the
// result count stays correct server-side.
func (sr *searchRepository) SearchStudents(ctx context.Context, filter domain.SearchFilter) (*[]domain.Student, error) {
	q := sr.db.WithContext(ctx).Model(&domain.Student{}).
		Preload("Parents", func(db *gorm.DB) *gorm.DB { return db.Order("tipo") }).
		Preload("Housing")

	if filter.Query != "" {
		pat := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where(
			"lower(nombres) LIKE ? OR lower(apellido_paterno) LIKE ? OR lower(apellido_materno) LIKE ? OR lower(dni) LIKE ? OR lower(domicilio) LIKE ?",
			pat, pat, pat, pat, pat,
		)
	}

	if filter.Nivel != "" {
		if !filter.Nivel.Valid() {
			return nil, fmt.Errorf("invalid nivel filter: %s", filter.Nivel)
		}
		q = q.Where("nivel = ?", filter.Nivel)
	}

	if filter.Grado != "" {
		q = q.Where("grado = ?", filter.Grado)
	}

	if filter.EdadMin != nil {
		q = q.Where("edad >= ?", *filter.EdadMin)
	}

	if filter.EdadMax != nil {
		q = q.Where("edad <= ?", *filter.EdadMax)
	}

	if filter.TipoSeguro != "" {
		if !filter.TipoSeguro.Valid() {
			return nil, fmt.Errorf("invalid tipo_seguro filter: %s", filter.TipoSeguro)
		}
		q = q.Where("tipo_seguro = ?", filter.TipoSeguro)
	}

	if filter.TipoIE != "" {
		if !filter.TipoIE.Valid() {
			return nil, fmt.Errorf("invalid tipo_ie filter: %s", filter.TipoIE)
		}
		q = q.Where("tipo_ie = ?", filter.TipoIE)
	}

	if filter.CondicionVivienda != "" {
		if !filter.CondicionVivienda.Valid() {
			return nil, fmt.Errorf("invalid condicion_vivienda filter: %s", filter.CondicionVivienda)
		}
		q = q.Joins("JOIN housing ON housing.student_id = students.id AND housing.condicion_vivienda = ?", filter.CondicionVivienda).
			Distinct("students.*")
	}

	var results []domain.Student
	if err := q.Order("students.created_at DESC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("search query failed: %v", err)
	}

	return &results, nil
}
