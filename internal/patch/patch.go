// Package patch implementa el campo de tres estados para updates
// parciales JSON: ausente, null explícito, o valor presente. El decode
// estándar no distingue "no vino" de "vino el cero", y esa diferencia
// es exactamente lo que un PUT parcial necesita.
package patch

import "encoding/json"

// Field envuelve un valor opcional de un body JSON.
//
//	Set=false             → la key no vino; no tocar la columna
//	Set=true, Valid=false → vino null; limpiar la columna
//	Set=true, Valid=true  → vino un valor (incluye "" y 0)
type Field[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// UnmarshalJSON solo corre cuando la key está presente en el body, así
// que Set queda en true incluso para null.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// MarshalJSON serializa null para campos sin valor. La ausencia no se
// puede expresar acá; quien arma el JSON debe omitir el campo.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Of construye un Field presente y con valor.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true, Valid: true}
}

// Null construye un Field presente pero null (limpia la columna).
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}
