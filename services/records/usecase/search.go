package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"fichaescolar/domain"
)

type searchUseCase struct {
	repo    domain.SearchRepo
	TimeOut time.Duration
}

func NewSearchUseCase(repo domain.SearchRepo, to time.Duration) domain.SearchUseCase {
	return &searchUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (su *searchUseCase) SearchStudents(ctx context.Context, filter domain.SearchFilter) (*[]domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	v, err := su.repo.SearchStudents(ctx, filter)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ExportCSV writes the fixed export columns for an in-memory result set.
// Pure transformation; the delivery layer turns it into a file download.
func (su *searchUseCase) ExportCSV(results *[]domain.Student) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Nombres", "Apellidos", "DNI", "Edad", "Nivel", "Grado", "Seccion", "Domicilio"}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("could not write csv header: %v", err)
	}

	if results != nil {
		for _, s := range *results {
			row := []string{
				s.Nombres,
				fmt.Sprintf("%s %s", s.ApellidoPaterno, s.ApellidoMaterno),
				strOrEmpty(s.DNI),
				intOrEmpty(s.Edad),
				string(s.Nivel),
				strOrEmpty(s.Grado),
				strOrEmpty(s.Seccion),
				strOrEmpty(s.Domicilio),
			}
			if err := w.Write(row); err != nil {
				return nil, "", fmt.Errorf("could not write csv row: %v", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("could not flush csv: %v", err)
	}

	filename := fmt.Sprintf("estudiantes_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrEmpty(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
