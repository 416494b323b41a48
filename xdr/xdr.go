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

// Package xdr provides the wire structures exchanged with Stellar network
// nodes and their XDR encoding/decoding. Tagged unions are modeled as a
// discriminant plus one pointer field per arm, and every codec function
// switches exhaustively over the discriminant.
//
// The low-level XDR reader/writer substrate is github.com/stellar/go-xdr;
// this package wraps it the same way a CBOR-based library would wrap its
// CBOR codec, so callers only ever see Encode/Decode and the typed
// EncodeTo/DecodeFrom methods.
package xdr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	goxdr "github.com/stellar/go-xdr/xdr3"
)

// Encodable is implemented by every wire structure in this package
type Encodable interface {
	EncodeTo(*Encoder) error
}

// Decodable is implemented by every wire structure in this package
type Decodable interface {
	DecodeFrom(*Decoder) error
}

// Encoder writes XDR primitives to an underlying writer
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) EncodeBool(v bool) error {
	_, err := goxdr.Marshal(e.w, v)
	return err
}

func (e *Encoder) EncodeInt32(v int32) error {
	_, err := goxdr.Marshal(e.w, v)
	return err
}

func (e *Encoder) EncodeUint32(v uint32) error {
	_, err := goxdr.Marshal(e.w, v)
	return err
}

func (e *Encoder) EncodeInt64(v int64) error {
	_, err := goxdr.Marshal(e.w, v)
	return err
}

func (e *Encoder) EncodeUint64(v uint64) error {
	_, err := goxdr.Marshal(e.w, v)
	return err
}

func (e *Encoder) EncodeString(v string) error {
	_, err := goxdr.Marshal(e.w, v)
	return err
}

// EncodeOpaque writes a variable-length opaque (length prefix plus padding)
func (e *Encoder) EncodeOpaque(v []byte) error {
	// Marshal a nil slice as an empty one so we always emit a length word
	if v == nil {
		v = []byte{}
	}
	_, err := goxdr.Marshal(e.w, v)
	return err
}

// EncodeFixedOpaque writes raw bytes without a length prefix, padded to a
// multiple of 4
func (e *Encoder) EncodeFixedOpaque(v []byte) error {
	if _, err := e.w.Write(v); err != nil {
		return err
	}
	if pad := (4 - len(v)%4) % 4; pad > 0 {
		if _, err := e.w.Write(make([]byte, pad)); err != nil {
			return err
		}
	}
	return nil
}

// Decoder reads XDR primitives from an underlying reader
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

func (d *Decoder) DecodeBool() (bool, error) {
	var v bool
	_, err := goxdr.Unmarshal(d.r, &v)
	return v, err
}

func (d *Decoder) DecodeInt32() (int32, error) {
	var v int32
	_, err := goxdr.Unmarshal(d.r, &v)
	return v, err
}

func (d *Decoder) DecodeUint32() (uint32, error) {
	var v uint32
	_, err := goxdr.Unmarshal(d.r, &v)
	return v, err
}

func (d *Decoder) DecodeInt64() (int64, error) {
	var v int64
	_, err := goxdr.Unmarshal(d.r, &v)
	return v, err
}

func (d *Decoder) DecodeUint64() (uint64, error) {
	var v uint64
	_, err := goxdr.Unmarshal(d.r, &v)
	return v, err
}

func (d *Decoder) DecodeString() (string, error) {
	var v string
	_, err := goxdr.Unmarshal(d.r, &v)
	return v, err
}

func (d *Decoder) DecodeOpaque() ([]byte, error) {
	var v []byte
	_, err := goxdr.Unmarshal(d.r, &v)
	return v, err
}

func (d *Decoder) DecodeFixedOpaque(size int) ([]byte, error) {
	padded := size + (4-size%4)%4
	buf := make([]byte, padded)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, err
	}
	return buf[:size], nil
}

// makeSlice allocates a decode target, staying nil for a zero count so
// decoded values compare equal to their unserialized form
func makeSlice[T any](n uint32) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// Encode returns the XDR encoding of the provided structure
func Encode(v Encodable) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := v.EncodeTo(NewEncoder(buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBase64 returns the standard base64 form of the XDR encoding
func EncodeBase64(v Encodable) (string, error) {
	data, err := Encode(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode populates the destination structure from XDR bytes. Trailing
// garbage after a complete structure is rejected.
func Decode(data []byte, v Decodable) error {
	r := bytes.NewReader(data)
	if err := v.DecodeFrom(NewDecoder(r)); err != nil {
		return err
	}
	if r.Len() > 0 {
		return fmt.Errorf("xdr: %d trailing bytes after decode", r.Len())
	}
	return nil
}

// DecodeBase64 decodes a base64 string and then the XDR structure within
func DecodeBase64(data string, v Decodable) error {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("xdr: invalid base64: %w", err)
	}
	return Decode(raw, v)
}
