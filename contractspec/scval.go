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
	"fmt"

	"github.com/blinklabs-io/gostellar/xdr"
)

// SCValToNative converts a contract value back to a native Go value:
// booleans and integers map to their builtin types, 128/256-bit
// integers to *big.Int, vecs to []any and maps to map[any]any.
// Addresses come back as their string form.
func SCValToNative(val xdr.ScVal) (any, error) {
	switch val.Type {
	case xdr.ScValTypeBool:
		return *val.B, nil
	case xdr.ScValTypeVoid:
		return nil, nil
	case xdr.ScValTypeError:
		return *val.Error, nil
	case xdr.ScValTypeU32:
		return *val.U32, nil
	case xdr.ScValTypeI32:
		return *val.I32, nil
	case xdr.ScValTypeU64:
		return *val.U64, nil
	case xdr.ScValTypeI64:
		return *val.I64, nil
	case xdr.ScValTypeTimepoint:
		return *val.Timepoint, nil
	case xdr.ScValTypeDuration:
		return *val.Duration, nil
	case xdr.ScValTypeU128:
		return BigFromU128Parts(*val.U128), nil
	case xdr.ScValTypeI128:
		return BigFromI128Parts(*val.I128), nil
	case xdr.ScValTypeU256:
		return BigFromU256Parts(*val.U256), nil
	case xdr.ScValTypeI256:
		return BigFromI256Parts(*val.I256), nil
	case xdr.ScValTypeBytes:
		return *val.Bytes, nil
	case xdr.ScValTypeString:
		return *val.Str, nil
	case xdr.ScValTypeSymbol:
		return *val.Sym, nil
	case xdr.ScValTypeVec:
		if val.Vec == nil {
			return []any(nil), nil
		}
		out := make([]any, len(*val.Vec))
		for i, elem := range *val.Vec {
			native, err := SCValToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("vec element %d: %w", i, err)
			}
			out[i] = native
		}
		return out, nil
	case xdr.ScValTypeMap:
		if val.Map == nil {
			return map[any]any(nil), nil
		}
		out := make(map[any]any, len(*val.Map))
		for _, entry := range *val.Map {
			key, err := SCValToNative(entry.Key)
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			switch key.(type) {
			case []byte, []any, map[any]any:
				return nil, fmt.Errorf(
					"map key of type %T is not usable as a Go map key",
					key,
				)
			}
			v, err := SCValToNative(entry.Val)
			if err != nil {
				return nil, fmt.Errorf("map value for key %v: %w", key, err)
			}
			out[key] = v
		}
		return out, nil
	case xdr.ScValTypeAddress:
		return val.Address.String()
	case xdr.ScValTypeContractInstance:
		return *val.Instance, nil
	case xdr.ScValTypeLedgerKeyContractInstance:
		return nil, nil
	case xdr.ScValTypeLedgerKeyNonce:
		return *val.NonceKey, nil
	default:
		return nil, fmt.Errorf("unsupported contract value type %d", val.Type)
	}
}
