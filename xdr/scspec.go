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

package xdr

import (
	"fmt"
)

// ScSpecType tags the type declarations a contract publishes for its
// functions and user-defined types
type ScSpecType int32

const (
	ScSpecTypeVal          ScSpecType = 0
	ScSpecTypeBool         ScSpecType = 1
	ScSpecTypeVoid         ScSpecType = 2
	ScSpecTypeError        ScSpecType = 3
	ScSpecTypeU32          ScSpecType = 4
	ScSpecTypeI32          ScSpecType = 5
	ScSpecTypeU64          ScSpecType = 6
	ScSpecTypeI64          ScSpecType = 7
	ScSpecTypeTimepoint    ScSpecType = 8
	ScSpecTypeDuration     ScSpecType = 9
	ScSpecTypeU128         ScSpecType = 10
	ScSpecTypeI128         ScSpecType = 11
	ScSpecTypeU256         ScSpecType = 12
	ScSpecTypeI256         ScSpecType = 13
	ScSpecTypeBytes        ScSpecType = 14
	ScSpecTypeString       ScSpecType = 16
	ScSpecTypeSymbol       ScSpecType = 17
	ScSpecTypeAddress      ScSpecType = 19
	ScSpecTypeMuxedAddress ScSpecType = 20
	ScSpecTypeOption       ScSpecType = 1000
	ScSpecTypeResult       ScSpecType = 1001
	ScSpecTypeVec          ScSpecType = 1002
	ScSpecTypeMap          ScSpecType = 1004
	ScSpecTypeTuple        ScSpecType = 1005
	ScSpecTypeBytesN       ScSpecType = 1006
	ScSpecTypeUdt          ScSpecType = 2000
)

type ScSpecTypeOptionV0 struct {
	ValueType ScSpecTypeDef
}

type ScSpecTypeResultV0 struct {
	OkType    ScSpecTypeDef
	ErrorType ScSpecTypeDef
}

type ScSpecTypeVecV0 struct {
	ElementType ScSpecTypeDef
}

type ScSpecTypeMapV0 struct {
	KeyType   ScSpecTypeDef
	ValueType ScSpecTypeDef
}

type ScSpecTypeTupleV0 struct {
	ValueTypes []ScSpecTypeDef
}

type ScSpecTypeBytesNV0 struct {
	N uint32
}

type ScSpecTypeUdtV0 struct {
	Name string
}

// ScSpecTypeDef is the recursive type-declaration union. Simple types
// carry no payload; compound types reference further type defs.
type ScSpecTypeDef struct {
	Type   ScSpecType
	Option *ScSpecTypeOptionV0
	Result *ScSpecTypeResultV0
	Vec    *ScSpecTypeVecV0
	Map    *ScSpecTypeMapV0
	Tuple  *ScSpecTypeTupleV0
	BytesN *ScSpecTypeBytesNV0
	Udt    *ScSpecTypeUdtV0
}

// Constructors for declaring types in code (mostly used by tests)

func SpecType(t ScSpecType) ScSpecTypeDef {
	return ScSpecTypeDef{Type: t}
}

func SpecTypeOption(value ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{
		Type:   ScSpecTypeOption,
		Option: &ScSpecTypeOptionV0{ValueType: value},
	}
}

func SpecTypeResult(ok, errType ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{
		Type:   ScSpecTypeResult,
		Result: &ScSpecTypeResultV0{OkType: ok, ErrorType: errType},
	}
}

func SpecTypeVec(element ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{
		Type: ScSpecTypeVec,
		Vec:  &ScSpecTypeVecV0{ElementType: element},
	}
}

func SpecTypeMap(key, value ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{
		Type: ScSpecTypeMap,
		Map:  &ScSpecTypeMapV0{KeyType: key, ValueType: value},
	}
}

func SpecTypeTuple(valueTypes ...ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{
		Type:  ScSpecTypeTuple,
		Tuple: &ScSpecTypeTupleV0{ValueTypes: valueTypes},
	}
}

func SpecTypeBytesN(n uint32) ScSpecTypeDef {
	return ScSpecTypeDef{
		Type:   ScSpecTypeBytesN,
		BytesN: &ScSpecTypeBytesNV0{N: n},
	}
}

func SpecTypeUdt(name string) ScSpecTypeDef {
	return ScSpecTypeDef{
		Type: ScSpecTypeUdt,
		Udt:  &ScSpecTypeUdtV0{Name: name},
	}
}

func (t *ScSpecTypeDef) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(t.Type)); err != nil {
		return err
	}
	switch t.Type {
	case ScSpecTypeVal, ScSpecTypeBool, ScSpecTypeVoid, ScSpecTypeError,
		ScSpecTypeU32, ScSpecTypeI32, ScSpecTypeU64, ScSpecTypeI64,
		ScSpecTypeTimepoint, ScSpecTypeDuration, ScSpecTypeU128,
		ScSpecTypeI128, ScSpecTypeU256, ScSpecTypeI256, ScSpecTypeBytes,
		ScSpecTypeString, ScSpecTypeSymbol, ScSpecTypeAddress,
		ScSpecTypeMuxedAddress:
		return nil
	case ScSpecTypeOption:
		if t.Option == nil {
			return fmt.Errorf("xdr: option type def has no value type")
		}
		return t.Option.ValueType.EncodeTo(e)
	case ScSpecTypeResult:
		if t.Result == nil {
			return fmt.Errorf("xdr: result type def has no arm types")
		}
		if err := t.Result.OkType.EncodeTo(e); err != nil {
			return err
		}
		return t.Result.ErrorType.EncodeTo(e)
	case ScSpecTypeVec:
		if t.Vec == nil {
			return fmt.Errorf("xdr: vec type def has no element type")
		}
		return t.Vec.ElementType.EncodeTo(e)
	case ScSpecTypeMap:
		if t.Map == nil {
			return fmt.Errorf("xdr: map type def has no key/value types")
		}
		if err := t.Map.KeyType.EncodeTo(e); err != nil {
			return err
		}
		return t.Map.ValueType.EncodeTo(e)
	case ScSpecTypeTuple:
		if t.Tuple == nil {
			return fmt.Errorf("xdr: tuple type def has no value types")
		}
		if err := e.EncodeUint32(uint32(len(t.Tuple.ValueTypes))); err != nil {
			return err
		}
		for i := range t.Tuple.ValueTypes {
			if err := t.Tuple.ValueTypes[i].EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	case ScSpecTypeBytesN:
		if t.BytesN == nil {
			return fmt.Errorf("xdr: bytes-n type def has no length")
		}
		return e.EncodeUint32(t.BytesN.N)
	case ScSpecTypeUdt:
		if t.Udt == nil {
			return fmt.Errorf("xdr: udt type def has no name")
		}
		return e.EncodeString(t.Udt.Name)
	default:
		return fmt.Errorf("xdr: unknown spec type %d", t.Type)
	}
}

func (t *ScSpecTypeDef) DecodeFrom(d *Decoder) error {
	tag, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*t = ScSpecTypeDef{Type: ScSpecType(tag)}
	switch t.Type {
	case ScSpecTypeVal, ScSpecTypeBool, ScSpecTypeVoid, ScSpecTypeError,
		ScSpecTypeU32, ScSpecTypeI32, ScSpecTypeU64, ScSpecTypeI64,
		ScSpecTypeTimepoint, ScSpecTypeDuration, ScSpecTypeU128,
		ScSpecTypeI128, ScSpecTypeU256, ScSpecTypeI256, ScSpecTypeBytes,
		ScSpecTypeString, ScSpecTypeSymbol, ScSpecTypeAddress,
		ScSpecTypeMuxedAddress:
		return nil
	case ScSpecTypeOption:
		t.Option = new(ScSpecTypeOptionV0)
		return t.Option.ValueType.DecodeFrom(d)
	case ScSpecTypeResult:
		t.Result = new(ScSpecTypeResultV0)
		if err := t.Result.OkType.DecodeFrom(d); err != nil {
			return err
		}
		return t.Result.ErrorType.DecodeFrom(d)
	case ScSpecTypeVec:
		t.Vec = new(ScSpecTypeVecV0)
		return t.Vec.ElementType.DecodeFrom(d)
	case ScSpecTypeMap:
		t.Map = new(ScSpecTypeMapV0)
		if err := t.Map.KeyType.DecodeFrom(d); err != nil {
			return err
		}
		return t.Map.ValueType.DecodeFrom(d)
	case ScSpecTypeTuple:
		t.Tuple = new(ScSpecTypeTupleV0)
		n, err := d.DecodeUint32()
		if err != nil {
			return err
		}
		t.Tuple.ValueTypes = makeSlice[ScSpecTypeDef](n)
		for i := range t.Tuple.ValueTypes {
			if err := t.Tuple.ValueTypes[i].DecodeFrom(d); err != nil {
				return err
			}
		}
		return nil
	case ScSpecTypeBytesN:
		t.BytesN = new(ScSpecTypeBytesNV0)
		n, err := d.DecodeUint32()
		if err != nil {
			return err
		}
		t.BytesN.N = n
		return nil
	case ScSpecTypeUdt:
		t.Udt = new(ScSpecTypeUdtV0)
		name, err := d.DecodeString()
		if err != nil {
			return err
		}
		t.Udt.Name = name
		return nil
	default:
		return fmt.Errorf("xdr: unknown spec type %d", tag)
	}
}

// ScSpecFunctionInputV0 declares one named function parameter
type ScSpecFunctionInputV0 struct {
	Doc  string
	Name string
	Type ScSpecTypeDef
}

func (i *ScSpecFunctionInputV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(i.Doc); err != nil {
		return err
	}
	if err := e.EncodeString(i.Name); err != nil {
		return err
	}
	return i.Type.EncodeTo(e)
}

func (i *ScSpecFunctionInputV0) DecodeFrom(d *Decoder) error {
	var err error
	if i.Doc, err = d.DecodeString(); err != nil {
		return err
	}
	if i.Name, err = d.DecodeString(); err != nil {
		return err
	}
	return i.Type.DecodeFrom(d)
}

// ScSpecFunctionV0 declares a contract function: its symbol name, ordered
// inputs and at most one output type
type ScSpecFunctionV0 struct {
	Doc     string
	Name    string
	Inputs  []ScSpecFunctionInputV0
	Outputs []ScSpecTypeDef
}

func (f *ScSpecFunctionV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(f.Doc); err != nil {
		return err
	}
	if len(f.Name) > maxSymbolLen {
		return fmt.Errorf(
			"xdr: function name %q is %d bytes, maximum is %d",
			f.Name,
			len(f.Name),
			maxSymbolLen,
		)
	}
	if err := e.EncodeString(f.Name); err != nil {
		return err
	}
	if err := e.EncodeUint32(uint32(len(f.Inputs))); err != nil {
		return err
	}
	for i := range f.Inputs {
		if err := f.Inputs[i].EncodeTo(e); err != nil {
			return err
		}
	}
	if len(f.Outputs) > 1 {
		return fmt.Errorf(
			"xdr: function %q declares %d outputs, maximum is 1",
			f.Name,
			len(f.Outputs),
		)
	}
	if err := e.EncodeUint32(uint32(len(f.Outputs))); err != nil {
		return err
	}
	for i := range f.Outputs {
		if err := f.Outputs[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *ScSpecFunctionV0) DecodeFrom(d *Decoder) error {
	var err error
	if f.Doc, err = d.DecodeString(); err != nil {
		return err
	}
	if f.Name, err = d.DecodeString(); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	f.Inputs = makeSlice[ScSpecFunctionInputV0](n)
	for i := range f.Inputs {
		if err := f.Inputs[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	n, err = d.DecodeUint32()
	if err != nil {
		return err
	}
	if n > 1 {
		return fmt.Errorf(
			"xdr: function %q declares %d outputs, maximum is 1",
			f.Name,
			n,
		)
	}
	f.Outputs = makeSlice[ScSpecTypeDef](n)
	for i := range f.Outputs {
		if err := f.Outputs[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// ScSpecUdtStructFieldV0 declares one named struct field
type ScSpecUdtStructFieldV0 struct {
	Doc  string
	Name string
	Type ScSpecTypeDef
}

func (f *ScSpecUdtStructFieldV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(f.Doc); err != nil {
		return err
	}
	if err := e.EncodeString(f.Name); err != nil {
		return err
	}
	return f.Type.EncodeTo(e)
}

func (f *ScSpecUdtStructFieldV0) DecodeFrom(d *Decoder) error {
	var err error
	if f.Doc, err = d.DecodeString(); err != nil {
		return err
	}
	if f.Name, err = d.DecodeString(); err != nil {
		return err
	}
	return f.Type.DecodeFrom(d)
}

// ScSpecUdtStructV0 declares a user-defined struct type
type ScSpecUdtStructV0 struct {
	Doc    string
	Lib    string
	Name   string
	Fields []ScSpecUdtStructFieldV0
}

func (s *ScSpecUdtStructV0) EncodeTo(e *Encoder) error {
	for _, str := range []string{s.Doc, s.Lib, s.Name} {
		if err := e.EncodeString(str); err != nil {
			return err
		}
	}
	if err := e.EncodeUint32(uint32(len(s.Fields))); err != nil {
		return err
	}
	for i := range s.Fields {
		if err := s.Fields[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *ScSpecUdtStructV0) DecodeFrom(d *Decoder) error {
	var err error
	if s.Doc, err = d.DecodeString(); err != nil {
		return err
	}
	if s.Lib, err = d.DecodeString(); err != nil {
		return err
	}
	if s.Name, err = d.DecodeString(); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	s.Fields = makeSlice[ScSpecUdtStructFieldV0](n)
	for i := range s.Fields {
		if err := s.Fields[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

type ScSpecUdtUnionCaseV0Kind int32

const (
	ScSpecUdtUnionCaseVoidV0Kind  ScSpecUdtUnionCaseV0Kind = 0
	ScSpecUdtUnionCaseTupleV0Kind ScSpecUdtUnionCaseV0Kind = 1
)

// ScSpecUdtUnionCaseVoidV0 is a union case carrying no payload
type ScSpecUdtUnionCaseVoidV0 struct {
	Doc  string
	Name string
}

// ScSpecUdtUnionCaseTupleV0 is a union case carrying a tuple payload
type ScSpecUdtUnionCaseTupleV0 struct {
	Doc  string
	Name string
	Type []ScSpecTypeDef
}

// ScSpecUdtUnionCaseV0 is one declared case of a user-defined union
type ScSpecUdtUnionCaseV0 struct {
	Kind      ScSpecUdtUnionCaseV0Kind
	VoidCase  *ScSpecUdtUnionCaseVoidV0
	TupleCase *ScSpecUdtUnionCaseTupleV0
}

// Name returns the case name regardless of kind
func (c ScSpecUdtUnionCaseV0) Name() string {
	switch c.Kind {
	case ScSpecUdtUnionCaseVoidV0Kind:
		if c.VoidCase != nil {
			return c.VoidCase.Name
		}
	case ScSpecUdtUnionCaseTupleV0Kind:
		if c.TupleCase != nil {
			return c.TupleCase.Name
		}
	}
	return ""
}

func (c *ScSpecUdtUnionCaseV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(c.Kind)); err != nil {
		return err
	}
	switch c.Kind {
	case ScSpecUdtUnionCaseVoidV0Kind:
		if c.VoidCase == nil {
			return fmt.Errorf("xdr: void union case has no declaration")
		}
		if err := e.EncodeString(c.VoidCase.Doc); err != nil {
			return err
		}
		return e.EncodeString(c.VoidCase.Name)
	case ScSpecUdtUnionCaseTupleV0Kind:
		if c.TupleCase == nil {
			return fmt.Errorf("xdr: tuple union case has no declaration")
		}
		if err := e.EncodeString(c.TupleCase.Doc); err != nil {
			return err
		}
		if err := e.EncodeString(c.TupleCase.Name); err != nil {
			return err
		}
		if err := e.EncodeUint32(uint32(len(c.TupleCase.Type))); err != nil {
			return err
		}
		for i := range c.TupleCase.Type {
			if err := c.TupleCase.Type[i].EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("xdr: unknown union case kind %d", c.Kind)
	}
}

func (c *ScSpecUdtUnionCaseV0) DecodeFrom(d *Decoder) error {
	kind, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	c.Kind = ScSpecUdtUnionCaseV0Kind(kind)
	switch c.Kind {
	case ScSpecUdtUnionCaseVoidV0Kind:
		c.VoidCase = new(ScSpecUdtUnionCaseVoidV0)
		if c.VoidCase.Doc, err = d.DecodeString(); err != nil {
			return err
		}
		c.VoidCase.Name, err = d.DecodeString()
		return err
	case ScSpecUdtUnionCaseTupleV0Kind:
		c.TupleCase = new(ScSpecUdtUnionCaseTupleV0)
		if c.TupleCase.Doc, err = d.DecodeString(); err != nil {
			return err
		}
		if c.TupleCase.Name, err = d.DecodeString(); err != nil {
			return err
		}
		n, err := d.DecodeUint32()
		if err != nil {
			return err
		}
		c.TupleCase.Type = makeSlice[ScSpecTypeDef](n)
		for i := range c.TupleCase.Type {
			if err := c.TupleCase.Type[i].DecodeFrom(d); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("xdr: unknown union case kind %d", kind)
	}
}

// ScSpecUdtUnionV0 declares a user-defined union type
type ScSpecUdtUnionV0 struct {
	Doc   string
	Lib   string
	Name  string
	Cases []ScSpecUdtUnionCaseV0
}

func (u *ScSpecUdtUnionV0) EncodeTo(e *Encoder) error {
	for _, str := range []string{u.Doc, u.Lib, u.Name} {
		if err := e.EncodeString(str); err != nil {
			return err
		}
	}
	if err := e.EncodeUint32(uint32(len(u.Cases))); err != nil {
		return err
	}
	for i := range u.Cases {
		if err := u.Cases[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (u *ScSpecUdtUnionV0) DecodeFrom(d *Decoder) error {
	var err error
	if u.Doc, err = d.DecodeString(); err != nil {
		return err
	}
	if u.Lib, err = d.DecodeString(); err != nil {
		return err
	}
	if u.Name, err = d.DecodeString(); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	u.Cases = makeSlice[ScSpecUdtUnionCaseV0](n)
	for i := range u.Cases {
		if err := u.Cases[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// ScSpecUdtEnumCaseV0 declares one named numeric enum case
type ScSpecUdtEnumCaseV0 struct {
	Doc   string
	Name  string
	Value uint32
}

func (c *ScSpecUdtEnumCaseV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(c.Doc); err != nil {
		return err
	}
	if err := e.EncodeString(c.Name); err != nil {
		return err
	}
	return e.EncodeUint32(c.Value)
}

func (c *ScSpecUdtEnumCaseV0) DecodeFrom(d *Decoder) error {
	var err error
	if c.Doc, err = d.DecodeString(); err != nil {
		return err
	}
	if c.Name, err = d.DecodeString(); err != nil {
		return err
	}
	c.Value, err = d.DecodeUint32()
	return err
}

// ScSpecUdtEnumV0 declares a user-defined numeric enum type
type ScSpecUdtEnumV0 struct {
	Doc   string
	Lib   string
	Name  string
	Cases []ScSpecUdtEnumCaseV0
}

func (u *ScSpecUdtEnumV0) EncodeTo(e *Encoder) error {
	for _, str := range []string{u.Doc, u.Lib, u.Name} {
		if err := e.EncodeString(str); err != nil {
			return err
		}
	}
	if err := e.EncodeUint32(uint32(len(u.Cases))); err != nil {
		return err
	}
	for i := range u.Cases {
		if err := u.Cases[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (u *ScSpecUdtEnumV0) DecodeFrom(d *Decoder) error {
	var err error
	if u.Doc, err = d.DecodeString(); err != nil {
		return err
	}
	if u.Lib, err = d.DecodeString(); err != nil {
		return err
	}
	if u.Name, err = d.DecodeString(); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	u.Cases = makeSlice[ScSpecUdtEnumCaseV0](n)
	for i := range u.Cases {
		if err := u.Cases[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// ScSpecUdtErrorEnumV0 declares a user-defined error enum type. The wire
// layout matches the plain enum.
type ScSpecUdtErrorEnumV0 = ScSpecUdtEnumV0

type ScSpecEntryKind int32

const (
	ScSpecEntryFunctionV0     ScSpecEntryKind = 0
	ScSpecEntryUdtStructV0    ScSpecEntryKind = 1
	ScSpecEntryUdtUnionV0     ScSpecEntryKind = 2
	ScSpecEntryUdtEnumV0      ScSpecEntryKind = 3
	ScSpecEntryUdtErrorEnumV0 ScSpecEntryKind = 4
)

// ScSpecEntry is one entry of a contract's published interface: a
// function declaration or a user-defined type declaration
type ScSpecEntry struct {
	Kind           ScSpecEntryKind
	FunctionV0     *ScSpecFunctionV0
	UdtStructV0    *ScSpecUdtStructV0
	UdtUnionV0     *ScSpecUdtUnionV0
	UdtEnumV0      *ScSpecUdtEnumV0
	UdtErrorEnumV0 *ScSpecUdtErrorEnumV0
}

// Name returns the declared name of the entry regardless of kind
func (s ScSpecEntry) Name() string {
	switch s.Kind {
	case ScSpecEntryFunctionV0:
		if s.FunctionV0 != nil {
			return s.FunctionV0.Name
		}
	case ScSpecEntryUdtStructV0:
		if s.UdtStructV0 != nil {
			return s.UdtStructV0.Name
		}
	case ScSpecEntryUdtUnionV0:
		if s.UdtUnionV0 != nil {
			return s.UdtUnionV0.Name
		}
	case ScSpecEntryUdtEnumV0:
		if s.UdtEnumV0 != nil {
			return s.UdtEnumV0.Name
		}
	case ScSpecEntryUdtErrorEnumV0:
		if s.UdtErrorEnumV0 != nil {
			return s.UdtErrorEnumV0.Name
		}
	}
	return ""
}

func (s *ScSpecEntry) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(s.Kind)); err != nil {
		return err
	}
	switch s.Kind {
	case ScSpecEntryFunctionV0:
		if s.FunctionV0 == nil {
			return fmt.Errorf("xdr: function spec entry has no declaration")
		}
		return s.FunctionV0.EncodeTo(e)
	case ScSpecEntryUdtStructV0:
		if s.UdtStructV0 == nil {
			return fmt.Errorf("xdr: struct spec entry has no declaration")
		}
		return s.UdtStructV0.EncodeTo(e)
	case ScSpecEntryUdtUnionV0:
		if s.UdtUnionV0 == nil {
			return fmt.Errorf("xdr: union spec entry has no declaration")
		}
		return s.UdtUnionV0.EncodeTo(e)
	case ScSpecEntryUdtEnumV0:
		if s.UdtEnumV0 == nil {
			return fmt.Errorf("xdr: enum spec entry has no declaration")
		}
		return s.UdtEnumV0.EncodeTo(e)
	case ScSpecEntryUdtErrorEnumV0:
		if s.UdtErrorEnumV0 == nil {
			return fmt.Errorf("xdr: error enum spec entry has no declaration")
		}
		return s.UdtErrorEnumV0.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown spec entry kind %d", s.Kind)
	}
}

func (s *ScSpecEntry) DecodeFrom(d *Decoder) error {
	kind, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	s.Kind = ScSpecEntryKind(kind)
	switch s.Kind {
	case ScSpecEntryFunctionV0:
		s.FunctionV0 = new(ScSpecFunctionV0)
		return s.FunctionV0.DecodeFrom(d)
	case ScSpecEntryUdtStructV0:
		s.UdtStructV0 = new(ScSpecUdtStructV0)
		return s.UdtStructV0.DecodeFrom(d)
	case ScSpecEntryUdtUnionV0:
		s.UdtUnionV0 = new(ScSpecUdtUnionV0)
		return s.UdtUnionV0.DecodeFrom(d)
	case ScSpecEntryUdtEnumV0:
		s.UdtEnumV0 = new(ScSpecUdtEnumV0)
		return s.UdtEnumV0.DecodeFrom(d)
	case ScSpecEntryUdtErrorEnumV0:
		s.UdtErrorEnumV0 = new(ScSpecUdtErrorEnumV0)
		return s.UdtErrorEnumV0.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown spec entry kind %d", kind)
	}
}
