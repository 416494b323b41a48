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
	"math/big"

	"github.com/blinklabs-io/gostellar/xdr"
)

var (
	word64Mask = new(big.Int).SetUint64(^uint64(0))
	twoPow128  = new(big.Int).Lsh(big.NewInt(1), 128)
	twoPow256  = new(big.Int).Lsh(big.NewInt(1), 256)
	maxU128    = new(big.Int).Sub(twoPow128, big.NewInt(1))
	maxI128    = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128    = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxU256    = new(big.Int).Sub(twoPow256, big.NewInt(1))
	maxI256    = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minI256    = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
)

// word extracts 64-bit word i (0 = least significant) from a
// non-negative integer
func word(v *big.Int, i uint) uint64 {
	w := new(big.Int).Rsh(v, 64*i)
	w.And(w, word64Mask)
	return w.Uint64()
}

// U128PartsFromBig splits a non-negative integer below 2^128 into
// high/low 64-bit words
func U128PartsFromBig(v *big.Int) (xdr.UInt128Parts, error) {
	if v.Sign() < 0 || v.Cmp(maxU128) > 0 {
		return xdr.UInt128Parts{}, fmt.Errorf(
			"value %s out of range for u128",
			v,
		)
	}
	return xdr.UInt128Parts{
		Hi: word(v, 1),
		Lo: word(v, 0),
	}, nil
}

// I128PartsFromBig splits a signed integer in [-2^127, 2^127) into
// two's-complement high/low words
func I128PartsFromBig(v *big.Int) (xdr.Int128Parts, error) {
	if v.Cmp(minI128) < 0 || v.Cmp(maxI128) > 0 {
		return xdr.Int128Parts{}, fmt.Errorf(
			"value %s out of range for i128",
			v,
		)
	}
	tw := v
	if v.Sign() < 0 {
		tw = new(big.Int).Add(v, twoPow128)
	}
	return xdr.Int128Parts{
		Hi: int64(word(tw, 1)),
		Lo: word(tw, 0),
	}, nil
}

// U256PartsFromBig splits a non-negative integer below 2^256 into four
// 64-bit words
func U256PartsFromBig(v *big.Int) (xdr.UInt256Parts, error) {
	if v.Sign() < 0 || v.Cmp(maxU256) > 0 {
		return xdr.UInt256Parts{}, fmt.Errorf(
			"value %s out of range for u256",
			v,
		)
	}
	return xdr.UInt256Parts{
		HiHi: word(v, 3),
		HiLo: word(v, 2),
		LoHi: word(v, 1),
		LoLo: word(v, 0),
	}, nil
}

// I256PartsFromBig splits a signed integer in [-2^255, 2^255) into
// two's-complement words
func I256PartsFromBig(v *big.Int) (xdr.Int256Parts, error) {
	if v.Cmp(minI256) < 0 || v.Cmp(maxI256) > 0 {
		return xdr.Int256Parts{}, fmt.Errorf(
			"value %s out of range for i256",
			v,
		)
	}
	tw := v
	if v.Sign() < 0 {
		tw = new(big.Int).Add(v, twoPow256)
	}
	return xdr.Int256Parts{
		HiHi: int64(word(tw, 3)),
		HiLo: word(tw, 2),
		LoHi: word(tw, 1),
		LoLo: word(tw, 0),
	}, nil
}

// BigFromU128Parts recomposes the integer a u128 value represents
func BigFromU128Parts(p xdr.UInt128Parts) *big.Int {
	v := new(big.Int).SetUint64(p.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(p.Lo))
}

// BigFromI128Parts recomposes the signed integer an i128 value
// represents
func BigFromI128Parts(p xdr.Int128Parts) *big.Int {
	v := big.NewInt(p.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(p.Lo))
}

// BigFromU256Parts recomposes the integer a u256 value represents
func BigFromU256Parts(p xdr.UInt256Parts) *big.Int {
	v := new(big.Int).SetUint64(p.HiHi)
	for _, w := range []uint64{p.HiLo, p.LoHi, p.LoLo} {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(w))
	}
	return v
}

// BigFromI256Parts recomposes the signed integer an i256 value
// represents
func BigFromI256Parts(p xdr.Int256Parts) *big.Int {
	v := big.NewInt(p.HiHi)
	for _, w := range []uint64{p.HiLo, p.LoHi, p.LoLo} {
		v.Lsh(v, 64)
		v.Add(v, new(big.Int).SetUint64(w))
	}
	return v
}
