package models

import (
	"fmt"
	"time"
)

// MontoColocado is one issuance record of the MontoColoCadoPC table, keyed by
// the RMV registry identifier. All attributes other than RMV are nullable in
// the table, hence the pointer fields.
type MontoColocado struct {
	RMV                      string        `json:"RMV"`
	EmiNombre                *string       `json:"emi_nombre,omitempty"`
	Emision                  *string       `json:"Emision,omitempty"`
	VencimientoOfertaPublica *FlexibleDate `json:"Vencimiento_oferta_publica,omitempty"`
	MontoEmitido             *float64      `json:"Monto_emitido,omitempty"`
	CasaEstructuradora       *string       `json:"Casa_Estructuradora,omitempty"`
	CasaColocadora           *string       `json:"Casa_Colocadora,omitempty"`
	RegistroInscripcion      *string       `json:"Registro_de_Inscripcion,omitempty"`
	FechaEmisionOP           *FlexibleDate `json:"Fecha_de_Emision_OP,omitempty"`
	FechaVencimientoOP       *FlexibleDate `json:"Fecha_de_Vencimiento_OP,omitempty"`
	Calificacion             *string       `json:"Calificacion,omitempty"`
	FechaCalificacion        *FlexibleDate `json:"Fecha_calificacion,omitempty"`
	Calificadora             *string       `json:"Calificadora,omitempty"`
}

// MontoInput is the create/update payload. Fields left nil are omitted from
// the generated INSERT/UPDATE. Casa_Estructuradora and Casa_Colocadora are
// accepted and validated but never written; they are maintained outside this
// service.
type MontoInput struct {
	RMV                      *string       `json:"RMV" validate:"omitempty,max=50"`
	EmiNombre                *string       `json:"emi_nombre" validate:"omitempty,max=250"`
	Emision                  *string       `json:"Emision" validate:"omitempty,max=6"`
	VencimientoOfertaPublica *FlexibleDate `json:"Vencimiento_oferta_publica"`
	MontoEmitido             *float64      `json:"Monto_emitido" validate:"omitempty,min=0"`
	CasaEstructuradora       *string       `json:"Casa_Estructuradora" validate:"omitempty,max=300"`
	CasaColocadora           *string       `json:"Casa_Colocadora" validate:"omitempty,max=80"`
	RegistroInscripcion      *string       `json:"Registro_de_Inscripcion" validate:"omitempty,max=50"`
	FechaEmisionOP           *FlexibleDate `json:"Fecha_de_Emision_OP"`
	FechaVencimientoOP       *FlexibleDate `json:"Fecha_de_Vencimiento_OP"`
	Calificacion             *string       `json:"Calificacion" validate:"omitempty,max=10"`
	FechaCalificacion        *FlexibleDate `json:"Fecha_calificacion"`
	Calificadora             *string       `json:"Calificadora" validate:"omitempty,max=200"`
}

// FieldMapping binds one external payload key to its storage column. The
// table's column identifiers carry spaces and accented characters; the
// payload keys are their ASCII-safe counterparts. The mapping is static and
// checked once at startup instead of being derived by string transformation
// at request time.
type FieldMapping struct {
	PayloadKey string
	Column     string
	Insertable bool
	Updatable  bool
}

// FieldMappings is the full payload-key to column mapping, in table column
// order. RMV is insertable (it is the business key supplied by the caller)
// but immutable afterwards. The two Casa columns are read-only.
var FieldMappings = []FieldMapping{
	{PayloadKey: "RMV", Column: "RMV", Insertable: true, Updatable: false},
	{PayloadKey: "emi_nombre", Column: "emi_nombre", Insertable: true, Updatable: true},
	{PayloadKey: "Emision", Column: "Emisión", Insertable: true, Updatable: true},
	{PayloadKey: "Vencimiento_oferta_publica", Column: "Vencimiento oferta pública", Insertable: true, Updatable: true},
	{PayloadKey: "Monto_emitido", Column: "Monto emitido", Insertable: true, Updatable: true},
	{PayloadKey: "Casa_Estructuradora", Column: "Casa Estructuradora", Insertable: false, Updatable: false},
	{PayloadKey: "Casa_Colocadora", Column: "Casa Colocadora", Insertable: false, Updatable: false},
	{PayloadKey: "Registro_de_Inscripcion", Column: "Registro de Inscripcion", Insertable: true, Updatable: true},
	{PayloadKey: "Fecha_de_Emision_OP", Column: "Fecha de Emision OP", Insertable: true, Updatable: true},
	{PayloadKey: "Fecha_de_Vencimiento_OP", Column: "Fecha de Vencimiento OP", Insertable: true, Updatable: true},
	{PayloadKey: "Calificacion", Column: "Calificación", Insertable: true, Updatable: true},
	{PayloadKey: "Fecha_calificacion", Column: "Fecha calificación", Insertable: true, Updatable: true},
	{PayloadKey: "Calificadora", Column: "Calificadora", Insertable: true, Updatable: true},
}

// ValidateFieldMappings checks the static mapping for duplicate payload keys
// or columns and verifies every mapping has a value extractor. Called once at
// startup; a failure here is a programming error and aborts the process.
func ValidateFieldMappings() error {
	keys := make(map[string]bool, len(FieldMappings))
	cols := make(map[string]bool, len(FieldMappings))
	probe := &MontoInput{}
	for _, fm := range FieldMappings {
		if keys[fm.PayloadKey] {
			return fmt.Errorf("duplicate payload key %q in field mappings", fm.PayloadKey)
		}
		if cols[fm.Column] {
			return fmt.Errorf("duplicate column %q in field mappings", fm.Column)
		}
		keys[fm.PayloadKey] = true
		cols[fm.Column] = true
		if _, known := probe.valueFor(fm.PayloadKey); !known {
			return fmt.Errorf("payload key %q has no value extractor", fm.PayloadKey)
		}
	}
	return nil
}

// valueFor returns the value the payload carries for a mapped key. The second
// return reports whether the key is known at all; the value is nil when the
// field was absent from the payload.
func (in *MontoInput) valueFor(key string) (any, bool) {
	switch key {
	case "RMV":
		return strPtrValue(in.RMV), true
	case "emi_nombre":
		return strPtrValue(in.EmiNombre), true
	case "Emision":
		return strPtrValue(in.Emision), true
	case "Vencimiento_oferta_publica":
		return datePtrValue(in.VencimientoOfertaPublica), true
	case "Monto_emitido":
		if in.MontoEmitido == nil {
			return nil, true
		}
		return *in.MontoEmitido, true
	case "Casa_Estructuradora":
		return strPtrValue(in.CasaEstructuradora), true
	case "Casa_Colocadora":
		return strPtrValue(in.CasaColocadora), true
	case "Registro_de_Inscripcion":
		return strPtrValue(in.RegistroInscripcion), true
	case "Fecha_de_Emision_OP":
		return datePtrValue(in.FechaEmisionOP), true
	case "Fecha_de_Vencimiento_OP":
		return datePtrValue(in.FechaVencimientoOP), true
	case "Calificacion":
		return strPtrValue(in.Calificacion), true
	case "Fecha_calificacion":
		return datePtrValue(in.FechaCalificacion), true
	case "Calificadora":
		return strPtrValue(in.Calificadora), true
	}
	return nil, false
}

func strPtrValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func datePtrValue(d *FlexibleDate) any {
	if d == nil {
		return nil
	}
	return d.Time
}

// InsertAssignments returns the columns and values present in the payload,
// restricted to the insert allow-list. Absent fields are left to the table's
// defaults.
func (in *MontoInput) InsertAssignments() (columns []string, values []any) {
	for _, fm := range FieldMappings {
		if !fm.Insertable {
			continue
		}
		if v, _ := in.valueFor(fm.PayloadKey); v != nil {
			columns = append(columns, fm.Column)
			values = append(values, v)
		}
	}
	return columns, values
}

// UpdateAssignments returns the columns and values present in the payload,
// restricted to the update allow-list (the insert set minus the immutable RMV).
func (in *MontoInput) UpdateAssignments() (columns []string, values []any) {
	for _, fm := range FieldMappings {
		if !fm.Updatable {
			continue
		}
		if v, _ := in.valueFor(fm.PayloadKey); v != nil {
			columns = append(columns, fm.Column)
			values = append(values, v)
		}
	}
	return columns, values
}

// ListFilter holds the optional predicates for the list operation. Zero-value
// fields mean "not filtered", never "match empty".
type ListFilter struct {
	EmiNombre  string     `json:"emi_nombre,omitempty"`
	RMV        string     `json:"rmv,omitempty"`
	Emision    string     `json:"emision,omitempty"`
	FechaDesde *time.Time `json:"fecha_desde,omitempty"`
	FechaHasta *time.Time `json:"fecha_hasta,omitempty"`
}

// IsZero reports whether no filter was supplied.
func (f ListFilter) IsZero() bool {
	return f.EmiNombre == "" && f.RMV == "" && f.Emision == "" &&
		f.FechaDesde == nil && f.FechaHasta == nil
}

// Stats is the aggregate over rows with a non-null issued amount. The
// sum/avg/min/max fields are null when no row qualifies.
type Stats struct {
	TotalRegistros    int64         `json:"total_registros"`
	MontoTotalEmitido *float64      `json:"monto_total_emitido"`
	MontoPromedio     *float64      `json:"monto_promedio"`
	FechaMasAntigua   *FlexibleDate `json:"fecha_mas_antigua"`
	FechaMasReciente  *FlexibleDate `json:"fecha_mas_reciente"`
}
