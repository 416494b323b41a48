// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package contractspec converts between native Go values and contract
// values, directed by a contract's published interface entries. The
// entry catalogue is immutable after construction and safe for
// concurrent use.
package contractspec

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gostellar/xdr"
)

var (
	// ErrFunctionNotFound is returned when the named function is not
	// declared by the contract interface
	ErrFunctionNotFound = errors.New("contractspec: function not found")
	// ErrMissingArgument is returned when a declared parameter has no
	// entry in the supplied argument map
	ErrMissingArgument = errors.New("contractspec: missing argument")
	// ErrTypeNotFound is returned when a user-defined type name does
	// not resolve against the catalogue
	ErrTypeNotFound = errors.New("contractspec: type not found")
)

// UnionVal is the native form of a user-defined union value: the case
// tag plus the payload values of a tuple case (empty for a void case)
type UnionVal struct {
	Tag    string
	Values []any
}

// ResultErr marks a native value as the error arm of a result type.
// A bare value converts against the ok arm.
type ResultErr struct {
	Value any
}

// Spec is an immutable catalogue of contract interface entries,
// queried by name
type Spec struct {
	entries []xdr.ScSpecEntry
	byName  map[string]*xdr.ScSpecEntry
}

// New builds a catalogue from interface entries. Later entries shadow
// earlier ones of the same name.
func New(entries []xdr.ScSpecEntry) *Spec {
	s := &Spec{
		entries: entries,
		byName:  make(map[string]*xdr.ScSpecEntry, len(entries)),
	}
	for i := range entries {
		if name := entries[i].Name(); name != "" {
			s.byName[name] = &entries[i]
		}
	}
	return s
}

// Entries returns the catalogue's entries in declaration order
func (s *Spec) Entries() []xdr.ScSpecEntry {
	return s.entries
}

// FindEntry looks up any entry by declared name
func (s *Spec) FindEntry(name string) (*xdr.ScSpecEntry, bool) {
	entry, ok := s.byName[name]
	return entry, ok
}

// FindFunction looks up a function declaration by name
func (s *Spec) FindFunction(name string) (*xdr.ScSpecFunctionV0, error) {
	entry, ok := s.byName[name]
	if !ok || entry.Kind != xdr.ScSpecEntryFunctionV0 {
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}
	return entry.FunctionV0, nil
}

// FuncArgsToSCVals converts named arguments into the ordered contract
// value list the named function expects. Each declared parameter, in
// declaration order, is looked up in args by name and converted against
// its declared type.
func (s *Spec) FuncArgsToSCVals(
	functionName string,
	args map[string]any,
) ([]xdr.ScVal, error) {
	fn, err := s.FindFunction(functionName)
	if err != nil {
		return nil, err
	}
	vals := make([]xdr.ScVal, 0, len(fn.Inputs))
	for _, input := range fn.Inputs {
		raw, ok := args[input.Name]
		if !ok {
			return nil, fmt.Errorf(
				"%w: %q for function %q",
				ErrMissingArgument,
				input.Name,
				functionName,
			)
		}
		val, err := s.NativeToSCVal(raw, input.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", input.Name, err)
		}
		vals = append(vals, val)
	}
	return vals, nil
}
