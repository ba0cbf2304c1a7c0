// Package vectorize fans a fixed set of values out into parallel columns and
// looks columns up by element type.
package vectorize

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrTypeAbsent: no column holds the requested element type.
	ErrTypeAbsent = errors.New("type not in table")
	// ErrTypeDuplicate: more than one column holds the requested element type.
	ErrTypeDuplicate = errors.New("duplicate type in table")
)

// Table is an ordered set of columns, one per value given to Replicate.
// Each column is a *[]T owned by the table.
type Table struct {
	cols []reflect.Value // *[]T
}

// Replicate builds a table with one column per value, each holding count
// copies of that value. Values are copied by assignment, so pointers and
// maps are shared between rows.
func Replicate(count int, values ...any) (*Table, error) {
	if count < 0 {
		return nil, fmt.Errorf("vectorize: negative count %d", count)
	}
	t := &Table{cols: make([]reflect.Value, 0, len(values))}
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("vectorize: value %d is untyped nil", i)
		}
		rv := reflect.ValueOf(v)
		s := reflect.MakeSlice(reflect.SliceOf(rv.Type()), count, count)
		for j := 0; j < count; j++ {
			s.Index(j).Set(rv)
		}
		p := reflect.New(s.Type())
		p.Elem().Set(s)
		t.cols = append(t.cols, p)
	}
	return t, nil
}

// Len returns the number of columns.
func (t *Table) Len() int {
	return len(t.cols)
}

// Types returns the element type of every column, in order.
func (t *Table) Types() []reflect.Type {
	out := make([]reflect.Type, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Type().Elem().Elem()
	}
	return out
}

// Column returns the unique column whose elements are T. The pointer aliases
// the table: appends through it are seen by later lookups.
func Column[T any](t *Table) (*[]T, error) {
	want := reflect.TypeFor[T]()
	var found *[]T
	for _, c := range t.cols {
		if c.Type().Elem().Elem() != want {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("vectorize: %w: %s", ErrTypeDuplicate, want)
		}
		found = c.Interface().(*[]T)
	}
	if found == nil {
		return nil, fmt.Errorf("vectorize: %w: %s", ErrTypeAbsent, want)
	}
	return found, nil
}

// MustColumn is like Column but panics on a missing or ambiguous type.
func MustColumn[T any](t *Table) *[]T {
	col, err := Column[T](t)
	if err != nil {
		panic(err)
	}
	return col
}
