package domain

// Closed value sets used across the ficha familiar. The store keeps them as
// text columns; Valid() is checked at the delivery boundary and again before
// persistence so an unexpected literal never reaches a row.

type Nivel string

const (
	NivelInicial    Nivel = "Inicial"
	NivelPrimaria   Nivel = "Primaria"
	NivelSecundaria Nivel = "Secundaria"
)

func (n Nivel) Valid() bool {
	switch n {
	case NivelInicial, NivelPrimaria, NivelSecundaria:
		return true
	}
	return false
}

type ParentTipo string

const (
	TipoPapa      ParentTipo = "PAPA"
	TipoMama      ParentTipo = "MAMA"
	TipoApoderado ParentTipo = "APODERADO"
)

func (t ParentTipo) Valid() bool {
	switch t {
	case TipoPapa, TipoMama, TipoApoderado:
		return true
	}
	return false
}

type TipoSeguro string

const (
	SeguroSIS        TipoSeguro = "SIS"
	SeguroEssalud    TipoSeguro = "ESSALUD"
	SeguroParticular TipoSeguro = "PARTICULAR"
	SeguroNoTiene    TipoSeguro = "NO TIENE"
)

func (t TipoSeguro) Valid() bool {
	switch t {
	case SeguroSIS, SeguroEssalud, SeguroParticular, SeguroNoTiene:
		return true
	}
	return false
}

type TipoIE string

const (
	IEEstatal    TipoIE = "ESTATAL"
	IEParticular TipoIE = "PARTICULAR"
	IEParroquial TipoIE = "PARROQUIAL"
)

func (t TipoIE) Valid() bool {
	switch t {
	case IEEstatal, IEParticular, IEParroquial:
		return true
	}
	return false
}

type SituacionLaboral string

const (
	LaboralDependiente   SituacionLaboral = "DEPENDIENTE"
	LaboralIndependiente SituacionLaboral = "INDEPENDIENTE"
)

func (s SituacionLaboral) Valid() bool {
	return s == LaboralDependiente || s == LaboralIndependiente
}

type CondicionVivienda string

const (
	ViviendaPropia    CondicionVivienda = "PROPIA"
	ViviendaAlquilada CondicionVivienda = "ALQUILADA"
	ViviendaDePosada  CondicionVivienda = "DE POSADA EN CASA DE PADRES U OTRO FAMILIAR"
)

func (c CondicionVivienda) Valid() bool {
	switch c {
	case ViviendaPropia, ViviendaAlquilada, ViviendaDePosada:
		return true
	}
	return false
}

type CalidadVivienda string

const (
	CalidadRustico CalidadVivienda = "MAT. RUSTICO"
	CalidadNoble   CalidadVivienda = "MAT. NOBLE"
)

func (c CalidadVivienda) Valid() bool {
	return c == CalidadRustico || c == CalidadNoble
}

type NumeroPisos string

const (
	UnPiso      NumeroPisos = "1 PISO"
	DosPisos    NumeroPisos = "2 PISOS"
	TresOMas    NumeroPisos = "3 o MAS PISOS"
)

func (n NumeroPisos) Valid() bool {
	switch n {
	case UnPiso, DosPisos, TresOMas:
		return true
	}
	return false
}

// NoRegistrado is the display fallback for absent categorical values when
// grouping statistics.
const NoRegistrado = "No especificado"
