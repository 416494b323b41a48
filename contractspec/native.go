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

package contractspec

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gostellar/xdr"
)

// NativeToSCVal converts a native Go value into the contract value the
// declared type calls for, dispatching exhaustively on the type tag.
// An xdr.ScVal passes through unconverted. Shape, range and name
// mismatches fail with an error identifying the offending value.
func (s *Spec) NativeToSCVal(
	value any,
	ty xdr.ScSpecTypeDef,
) (xdr.ScVal, error) {
	if val, ok := value.(xdr.ScVal); ok {
		return val, nil
	}
	switch ty.Type {
	case xdr.ScSpecTypeVal:
		return xdr.ScVal{}, fmt.Errorf(
			"value of type %T cannot convert to an unconstrained value",
			value,
		)
	case xdr.ScSpecTypeVoid:
		if value != nil {
			return xdr.ScVal{}, fmt.Errorf(
				"void type cannot hold a %T value",
				value,
			)
		}
		return xdr.ScVoid(), nil
	case xdr.ScSpecTypeBool:
		b, ok := value.(bool)
		if !ok {
			return xdr.ScVal{}, fmt.Errorf("expected bool, got %T", value)
		}
		return xdr.ScBool(b), nil
	case xdr.ScSpecTypeError:
		scErr, ok := value.(xdr.ScError)
		if !ok {
			return xdr.ScVal{}, fmt.Errorf(
				"expected xdr.ScError, got %T",
				value,
			)
		}
		return xdr.ScVal{Type: xdr.ScValTypeError, Error: &scErr}, nil
	case xdr.ScSpecTypeU32:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if !n.IsUint64() || n.Uint64() > math.MaxUint32 {
			return xdr.ScVal{}, fmt.Errorf("value %s out of range for u32", n)
		}
		return xdr.ScU32(uint32(n.Uint64())), nil
	case xdr.ScSpecTypeI32:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if !n.IsInt64() || n.Int64() > math.MaxInt32 ||
			n.Int64() < math.MinInt32 {
			return xdr.ScVal{}, fmt.Errorf("value %s out of range for i32", n)
		}
		return xdr.ScI32(int32(n.Int64())), nil
	case xdr.ScSpecTypeU64:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if !n.IsUint64() {
			return xdr.ScVal{}, fmt.Errorf("value %s out of range for u64", n)
		}
		return xdr.ScU64(n.Uint64()), nil
	case xdr.ScSpecTypeI64:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if !n.IsInt64() {
			return xdr.ScVal{}, fmt.Errorf("value %s out of range for i64", n)
		}
		return xdr.ScI64(n.Int64()), nil
	case xdr.ScSpecTypeTimepoint:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if !n.IsUint64() {
			return xdr.ScVal{}, fmt.Errorf(
				"value %s out of range for timepoint",
				n,
			)
		}
		return xdr.ScTimepoint(n.Uint64()), nil
	case xdr.ScSpecTypeDuration:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if !n.IsUint64() {
			return xdr.ScVal{}, fmt.Errorf(
				"value %s out of range for duration",
				n,
			)
		}
		return xdr.ScDuration(n.Uint64()), nil
	case xdr.ScSpecTypeU128:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		parts, err := U128PartsFromBig(n)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScVal{Type: xdr.ScValTypeU128, U128: &parts}, nil
	case xdr.ScSpecTypeI128:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		parts, err := I128PartsFromBig(n)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScVal{Type: xdr.ScValTypeI128, I128: &parts}, nil
	case xdr.ScSpecTypeU256:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		parts, err := U256PartsFromBig(n)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScVal{Type: xdr.ScValTypeU256, U256: &parts}, nil
	case xdr.ScSpecTypeI256:
		n, err := parseBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		parts, err := I256PartsFromBig(n)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScVal{Type: xdr.ScValTypeI256, I256: &parts}, nil
	case xdr.ScSpecTypeBytes:
		raw, err := parseBytes(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScBytes(raw), nil
	case xdr.ScSpecTypeBytesN:
		raw, err := parseBytes(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if uint32(len(raw)) != ty.BytesN.N {
			return xdr.ScVal{}, fmt.Errorf(
				"expected %d bytes, got %d",
				ty.BytesN.N,
				len(raw),
			)
		}
		return xdr.ScBytes(raw), nil
	case xdr.ScSpecTypeString:
		str, ok := value.(string)
		if !ok {
			return xdr.ScVal{}, fmt.Errorf("expected string, got %T", value)
		}
		return xdr.ScString(str), nil
	case xdr.ScSpecTypeSymbol:
		sym, ok := value.(string)
		if !ok {
			return xdr.ScVal{}, fmt.Errorf("expected string, got %T", value)
		}
		return xdr.ScSymbol(sym), nil
	case xdr.ScSpecTypeAddress, xdr.ScSpecTypeMuxedAddress:
		str, ok := value.(string)
		if !ok {
			return xdr.ScVal{}, fmt.Errorf(
				"expected address string, got %T",
				value,
			)
		}
		addr, err := xdr.ScAddressFromString(str)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScAddressVal(addr), nil
	case xdr.ScSpecTypeOption:
		if value == nil {
			return xdr.ScVoid(), nil
		}
		return s.NativeToSCVal(value, ty.Option.ValueType)
	case xdr.ScSpecTypeResult:
		if resultErr, ok := value.(ResultErr); ok {
			return s.NativeToSCVal(resultErr.Value, ty.Result.ErrorType)
		}
		return s.NativeToSCVal(value, ty.Result.OkType)
	case xdr.ScSpecTypeVec:
		return s.sliceToVec(value, ty.Vec.ElementType)
	case xdr.ScSpecTypeMap:
		return s.mapToSCMap(value, ty.Map.KeyType, ty.Map.ValueType)
	case xdr.ScSpecTypeTuple:
		return s.tupleToVec(value, ty.Tuple.ValueTypes)
	case xdr.ScSpecTypeUdt:
		return s.udtToSCVal(value, ty.Udt.Name)
	default:
		return xdr.ScVal{}, fmt.Errorf(
			"unsupported declared type %d",
			ty.Type,
		)
	}
}

func (s *Spec) sliceToVec(
	value any,
	elementType xdr.ScSpecTypeDef,
) (xdr.ScVal, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return xdr.ScVal{}, fmt.Errorf("expected slice, got %T", value)
	}
	vec := make(xdr.ScVec, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := s.NativeToSCVal(rv.Index(i).Interface(), elementType)
		if err != nil {
			return xdr.ScVal{}, fmt.Errorf("element %d: %w", i, err)
		}
		vec[i] = elem
	}
	return xdr.ScVecVal(vec...), nil
}

func (s *Spec) mapToSCMap(
	value any,
	keyType xdr.ScSpecTypeDef,
	valueType xdr.ScSpecTypeDef,
) (xdr.ScVal, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return xdr.ScVal{}, fmt.Errorf("expected map, got %T", value)
	}
	type keyedEntry struct {
		entry   xdr.ScMapEntry
		keyWire []byte
	}
	entries := make([]keyedEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := s.NativeToSCVal(iter.Key().Interface(), keyType)
		if err != nil {
			return xdr.ScVal{}, fmt.Errorf(
				"map key %v: %w",
				iter.Key().Interface(),
				err,
			)
		}
		val, err := s.NativeToSCVal(iter.Value().Interface(), valueType)
		if err != nil {
			return xdr.ScVal{}, fmt.Errorf(
				"map value for key %v: %w",
				iter.Key().Interface(),
				err,
			)
		}
		keyWire, err := xdr.Encode(&key)
		if err != nil {
			return xdr.ScVal{}, err
		}
		entries = append(entries, keyedEntry{
			entry:   xdr.ScMapEntry{Key: key, Val: val},
			keyWire: keyWire,
		})
	}
	// map iteration order is random; sort by encoded key for a
	// deterministic wire form
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].keyWire, entries[j].keyWire) < 0
	})
	scMap := make(xdr.ScMap, len(entries))
	for i, e := range entries {
		scMap[i] = e.entry
	}
	return xdr.ScMapVal(scMap...), nil
}

func (s *Spec) tupleToVec(
	value any,
	valueTypes []xdr.ScSpecTypeDef,
) (xdr.ScVal, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return xdr.ScVal{}, fmt.Errorf("expected tuple slice, got %T", value)
	}
	if rv.Len() != len(valueTypes) {
		return xdr.ScVal{}, fmt.Errorf(
			"tuple arity mismatch: %d values for %d declared types",
			rv.Len(),
			len(valueTypes),
		)
	}
	vec := make(xdr.ScVec, rv.Len())
	for i := range valueTypes {
		elem, err := s.NativeToSCVal(rv.Index(i).Interface(), valueTypes[i])
		if err != nil {
			return xdr.ScVal{}, fmt.Errorf("tuple element %d: %w", i, err)
		}
		vec[i] = elem
	}
	return xdr.ScVecVal(vec...), nil
}

func (s *Spec) udtToSCVal(value any, name string) (xdr.ScVal, error) {
	entry, ok := s.byName[name]
	if !ok {
		return xdr.ScVal{}, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
	}
	switch entry.Kind {
	case xdr.ScSpecEntryUdtStructV0:
		return s.structToSCVal(value, entry.UdtStructV0)
	case xdr.ScSpecEntryUdtUnionV0:
		return s.unionToSCVal(value, entry.UdtUnionV0)
	case xdr.ScSpecEntryUdtEnumV0, xdr.ScSpecEntryUdtErrorEnumV0:
		enum := entry.UdtEnumV0
		if enum == nil {
			enum = entry.UdtErrorEnumV0
		}
		return enumToSCVal(value, enum)
	default:
		return xdr.ScVal{}, fmt.Errorf(
			"entry %q is not a user-defined type",
			name,
		)
	}
}

func structAllFieldsNumeric(def *xdr.ScSpecUdtStructV0) bool {
	for _, field := range def.Fields {
		if _, err := strconv.Atoi(field.Name); err != nil {
			return false
		}
	}
	return len(def.Fields) > 0
}

func (s *Spec) structToSCVal(
	value any,
	def *xdr.ScSpecUdtStructV0,
) (xdr.ScVal, error) {
	// a struct whose field names are all numeric is a tuple struct and
	// converts from an ordered slice into a vec
	if structAllFieldsNumeric(def) {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return xdr.ScVal{}, fmt.Errorf(
				"expected slice for tuple struct %q, got %T",
				def.Name,
				value,
			)
		}
		if rv.Len() != len(def.Fields) {
			return xdr.ScVal{}, fmt.Errorf(
				"tuple struct %q has %d fields, got %d values",
				def.Name,
				len(def.Fields),
				rv.Len(),
			)
		}
		vec := make(xdr.ScVec, rv.Len())
		for i, field := range def.Fields {
			elem, err := s.NativeToSCVal(rv.Index(i).Interface(), field.Type)
			if err != nil {
				return xdr.ScVal{}, fmt.Errorf(
					"struct %q field %q: %w",
					def.Name,
					field.Name,
					err,
				)
			}
			vec[i] = elem
		}
		return xdr.ScVecVal(vec...), nil
	}
	fields, ok := value.(map[string]any)
	if !ok {
		return xdr.ScVal{}, fmt.Errorf(
			"expected map for struct %q, got %T",
			def.Name,
			value,
		)
	}
	scMap := make(xdr.ScMap, 0, len(def.Fields))
	for _, field := range def.Fields {
		raw, ok := fields[field.Name]
		if !ok {
			return xdr.ScVal{}, fmt.Errorf(
				"struct %q is missing field %q",
				def.Name,
				field.Name,
			)
		}
		val, err := s.NativeToSCVal(raw, field.Type)
		if err != nil {
			return xdr.ScVal{}, fmt.Errorf(
				"struct %q field %q: %w",
				def.Name,
				field.Name,
				err,
			)
		}
		scMap = append(scMap, xdr.ScMapEntry{
			Key: xdr.ScSymbol(field.Name),
			Val: val,
		})
	}
	return xdr.ScMapVal(scMap...), nil
}

func (s *Spec) unionToSCVal(
	value any,
	def *xdr.ScSpecUdtUnionV0,
) (xdr.ScVal, error) {
	union, ok := value.(UnionVal)
	if !ok {
		return xdr.ScVal{}, fmt.Errorf(
			"expected UnionVal for union %q, got %T",
			def.Name,
			value,
		)
	}
	for _, c := range def.Cases {
		if !strings.EqualFold(c.Name(), union.Tag) {
			continue
		}
		vec := xdr.ScVec{xdr.ScSymbol(c.Name())}
		switch c.Kind {
		case xdr.ScSpecUdtUnionCaseVoidV0Kind:
			if len(union.Values) != 0 {
				return xdr.ScVal{}, fmt.Errorf(
					"union %q case %q carries no payload, got %d values",
					def.Name,
					c.Name(),
					len(union.Values),
				)
			}
		case xdr.ScSpecUdtUnionCaseTupleV0Kind:
			types := c.TupleCase.Type
			if len(union.Values) != len(types) {
				return xdr.ScVal{}, fmt.Errorf(
					"union %q case %q expects %d values, got %d",
					def.Name,
					c.Name(),
					len(types),
					len(union.Values),
				)
			}
			for i, t := range types {
				val, err := s.NativeToSCVal(union.Values[i], t)
				if err != nil {
					return xdr.ScVal{}, fmt.Errorf(
						"union %q case %q value %d: %w",
						def.Name,
						c.Name(),
						i,
						err,
					)
				}
				vec = append(vec, val)
			}
		}
		return xdr.ScVecVal(vec...), nil
	}
	return xdr.ScVal{}, fmt.Errorf(
		"union %q has no case %q",
		def.Name,
		union.Tag,
	)
}

func enumToSCVal(value any, def *xdr.ScSpecUdtEnumV0) (xdr.ScVal, error) {
	if name, ok := value.(string); ok {
		for _, c := range def.Cases {
			if strings.EqualFold(c.Name, name) {
				return xdr.ScU32(c.Value), nil
			}
		}
		return xdr.ScVal{}, fmt.Errorf(
			"enum %q has no case named %q",
			def.Name,
			name,
		)
	}
	n, err := parseBigInt(value)
	if err != nil {
		return xdr.ScVal{}, fmt.Errorf("enum %q: %w", def.Name, err)
	}
	if !n.IsUint64() || n.Uint64() > math.MaxUint32 {
		return xdr.ScVal{}, fmt.Errorf(
			"enum %q value %s out of range",
			def.Name,
			n,
		)
	}
	raw := uint32(n.Uint64())
	for _, c := range def.Cases {
		if c.Value == raw {
			return xdr.ScU32(raw), nil
		}
	}
	return xdr.ScVal{}, fmt.Errorf(
		"enum %q has no case with value %d",
		def.Name,
		raw,
	)
}

// parseBigInt widens any native integer representation to a big
// integer: builtin integer types, decimal strings and *big.Int
func parseBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("cannot parse %q as an integer", v)
		}
		return n, nil
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("nil *big.Int")
		}
		return v, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", value)
	}
}

// parseBytes accepts raw bytes or a hex string
func parseBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		raw, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as hex bytes: %w", v, err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("expected bytes or hex string, got %T", value)
	}
}
