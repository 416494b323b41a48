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

// Package strkey implements the checksummed, versioned base32 string
// encoding used for every address-like identifier on the network: a
// version byte selecting the identifier kind, the payload bytes, and a
// 2-byte CRC16/XMODEM trailer, base32-encoded without padding.
package strkey

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
)

// VersionByte selects the identifier kind being encoded
type VersionByte byte

const (
	VersionByteAccountID        VersionByte = 6 << 3  // 'G'
	VersionByteSeed             VersionByte = 18 << 3 // 'S'
	VersionByteMuxedAccount     VersionByte = 12 << 3 // 'M'
	VersionBytePreAuthTx        VersionByte = 19 << 3 // 'T'
	VersionByteHashX            VersionByte = 23 << 3 // 'X'
	VersionByteSignedPayload    VersionByte = 15 << 3 // 'P'
	VersionByteContract         VersionByte = 2 << 3  // 'C'
	VersionByteLiquidityPool    VersionByte = 11 << 3 // 'L'
	VersionByteClaimableBalance VersionByte = 1 << 3  // 'B'
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// payloadSize returns the expected payload length in bytes for a version,
// or -1 when the version allows variable-length payloads
func payloadSize(version VersionByte) (int, error) {
	switch version {
	case VersionByteAccountID,
		VersionByteSeed,
		VersionBytePreAuthTx,
		VersionByteHashX,
		VersionByteContract,
		VersionByteLiquidityPool:
		return 32, nil
	case VersionByteMuxedAccount:
		return 40, nil
	case VersionByteClaimableBalance:
		// 1-byte balance type prefix plus 32-byte id
		return 33, nil
	case VersionByteSignedPayload:
		return -1, nil
	default:
		return 0, fmt.Errorf("strkey: unknown version byte %#x", byte(version))
	}
}

// Encode returns the strkey form of the given payload bytes under the
// given version byte
func Encode(version VersionByte, src []byte) (string, error) {
	size, err := payloadSize(version)
	if err != nil {
		return "", err
	}
	if size >= 0 && len(src) != size {
		return "", fmt.Errorf(
			"strkey: payload is %d bytes, expected %d for version %#x",
			len(src),
			size,
			byte(version),
		)
	}
	if version == VersionByteSignedPayload {
		// 32-byte key, 4-byte length, 4..64 byte payload padded to 4
		if len(src) < 40 || len(src) > 100 {
			return "", fmt.Errorf(
				"strkey: signed payload is %d bytes, expected 40 to 100",
				len(src),
			)
		}
	}
	raw := make([]byte, 0, len(src)+3)
	raw = append(raw, byte(version))
	raw = append(raw, src...)
	raw = binary.LittleEndian.AppendUint16(raw, checksum(raw))
	return encoding.EncodeToString(raw), nil
}

// MustEncode is like Encode but panics on error. Useful for known-good
// fixed-size payloads.
func MustEncode(version VersionByte, src []byte) string {
	ret, err := Encode(version, src)
	if err != nil {
		panic(err)
	}
	return ret
}

// Decode parses a strkey string, verifies its checksum and version byte
// against the requested kind, and returns the payload bytes
func Decode(version VersionByte, src string) ([]byte, error) {
	size, err := payloadSize(version)
	if err != nil {
		return nil, err
	}
	raw, err := encoding.DecodeString(src)
	if err != nil {
		return nil, fmt.Errorf("strkey: invalid base32: %w", err)
	}
	// Reject non-canonical encodings (stray bits, lowercase input)
	if encoding.EncodeToString(raw) != src {
		return nil, fmt.Errorf("strkey: non-canonical encoding %q", src)
	}
	if len(raw) < 3 {
		return nil, fmt.Errorf("strkey: %q is too short", src)
	}
	payload := raw[:len(raw)-2]
	expected := binary.LittleEndian.Uint16(raw[len(raw)-2:])
	if got := checksum(payload); got != expected {
		return nil, fmt.Errorf(
			"strkey: checksum mismatch in %q: computed %#04x, found %#04x",
			src,
			got,
			expected,
		)
	}
	if VersionByte(payload[0]) != version {
		return nil, fmt.Errorf(
			"strkey: version byte %#x does not match expected %#x",
			payload[0],
			byte(version),
		)
	}
	data := payload[1:]
	if size >= 0 && len(data) != size {
		return nil, fmt.Errorf(
			"strkey: payload is %d bytes, expected %d for version %#x",
			len(data),
			size,
			byte(version),
		)
	}
	if version == VersionByteSignedPayload {
		if len(data) < 40 || len(data) > 100 {
			return nil, fmt.Errorf(
				"strkey: signed payload is %d bytes, expected 40 to 100",
				len(data),
			)
		}
	}
	return data, nil
}

// IsValid reports whether the given string is a well-formed strkey of the
// given kind
func IsValid(version VersionByte, src string) bool {
	_, err := Decode(version, src)
	return err == nil
}

// Version returns the version byte of a strkey string without requiring
// the caller to know the kind up front
func Version(src string) (VersionByte, error) {
	raw, err := encoding.DecodeString(src)
	if err != nil {
		return 0, fmt.Errorf("strkey: invalid base32: %w", err)
	}
	if len(raw) < 3 {
		return 0, fmt.Errorf("strkey: %q is too short", src)
	}
	version := VersionByte(raw[0])
	if _, err := payloadSize(version); err != nil {
		return 0, err
	}
	return version, nil
}

// checksum implements CRC16/XMODEM (poly 0x1021, initial value 0)
func checksum(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
