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

package strkey

import (
	"encoding/binary"
	"fmt"
)

// SignedPayload is the payload behind a 'P' strkey: an ed25519 public key
// plus up to 64 bytes of arbitrary payload the key must have signed
type SignedPayload struct {
	Ed25519 [32]byte
	Payload []byte
}

const maxSignedPayloadLen = 64

// NewSignedPayload wraps a key and payload, rejecting oversized payloads
func NewSignedPayload(ed25519 [32]byte, payload []byte) (SignedPayload, error) {
	if len(payload) == 0 || len(payload) > maxSignedPayloadLen {
		return SignedPayload{}, fmt.Errorf(
			"strkey: signed payload length %d outside range 1 to %d",
			len(payload),
			maxSignedPayloadLen,
		)
	}
	return SignedPayload{Ed25519: ed25519, Payload: payload}, nil
}

// Encode returns the 'P' strkey form
func (p SignedPayload) Encode() (string, error) {
	if len(p.Payload) == 0 || len(p.Payload) > maxSignedPayloadLen {
		return "", fmt.Errorf(
			"strkey: signed payload length %d outside range 1 to %d",
			len(p.Payload),
			maxSignedPayloadLen,
		)
	}
	padded := len(p.Payload) + (4-len(p.Payload)%4)%4
	raw := make([]byte, 0, 32+4+padded)
	raw = append(raw, p.Ed25519[:]...)
	raw = binary.BigEndian.AppendUint32(raw, uint32(len(p.Payload)))
	raw = append(raw, p.Payload...)
	raw = append(raw, make([]byte, padded-len(p.Payload))...)
	return Encode(VersionByteSignedPayload, raw)
}

// DecodeSignedPayload parses a 'P' strkey into its key and payload parts
func DecodeSignedPayload(address string) (SignedPayload, error) {
	raw, err := Decode(VersionByteSignedPayload, address)
	if err != nil {
		return SignedPayload{}, err
	}
	length := binary.BigEndian.Uint32(raw[32:36])
	if length == 0 || length > maxSignedPayloadLen {
		return SignedPayload{}, fmt.Errorf(
			"strkey: signed payload length %d outside range 1 to %d",
			length,
			maxSignedPayloadLen,
		)
	}
	padded := int(length) + (4-int(length)%4)%4
	if len(raw) != 36+padded {
		return SignedPayload{}, fmt.Errorf(
			"strkey: signed payload is %d bytes, expected %d for declared length %d",
			len(raw),
			36+padded,
			length,
		)
	}
	for _, b := range raw[36+int(length):] {
		if b != 0 {
			return SignedPayload{}, fmt.Errorf(
				"strkey: signed payload has non-zero padding",
			)
		}
	}
	var ret SignedPayload
	copy(ret.Ed25519[:], raw[:32])
	ret.Payload = append([]byte(nil), raw[36:36+int(length)]...)
	return ret, nil
}
