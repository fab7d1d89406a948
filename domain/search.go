package domain

import "context"

// SearchFilter is the composite criteria set of the advanced search page.
// Zero values mean "not supplied"; criteria compose with AND, except the
// free-text query which OR-matches across name, surname, DNI and address.
type SearchFilter struct {
	Query             string
	Nivel             Nivel
	Grado             string
	EdadMin           *int
	EdadMax           *int
	TipoSeguro        TipoSeguro
	TipoIE            TipoIE
	CondicionVivienda CondicionVivienda
}

type SearchRepo interface {
	// SearchStudents returns matching students newest-created first, with
	// parents and housing embedded.
	SearchStudents(ctx context.Context, filter SearchFilter) (*[]Student, error)
}

type SearchUseCase interface {
	SearchStudents(ctx context.Context, filter SearchFilter) (*[]Student, error)
	// ExportCSV serializes an in-memory result set to CSV and returns the
	// payload with a dated filename. No persistence involved.
	ExportCSV(results *[]Student) ([]byte, string, error)
}
