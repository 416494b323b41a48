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

// Package network defines the well-known network passphrases and the
// derivation of the 32-byte network id that provides replay protection
// for every signature produced against a given network.
package network

import (
	"crypto/sha256"
	"errors"
)

const (
	// PublicNetworkPassphrase is the passphrase of the public network
	PublicNetworkPassphrase = "Public Global Stellar Network ; September 2015"
	// TestNetworkPassphrase is the passphrase of the test network
	TestNetworkPassphrase = "Test SDF Network ; September 2015"
	// FutureNetworkPassphrase is the passphrase of the protocol-preview network
	FutureNetworkPassphrase = "Test SDF Future Network ; October 2022"
	// StandaloneNetworkPassphrase is the conventional passphrase for local
	// single-node development networks
	StandaloneNetworkPassphrase = "Standalone Network ; February 2017"
)

// ErrNoPassphrase is returned when an empty passphrase is supplied where a
// network must be identified
var ErrNoPassphrase = errors.New("network passphrase is empty")

// ID returns the network id for a passphrase: the SHA-256 digest of the
// passphrase bytes. The id prefixes every signature base, so signatures
// made for one network are invalid on any other.
func ID(passphrase string) ([32]byte, error) {
	if passphrase == "" {
		return [32]byte{}, ErrNoPassphrase
	}
	return sha256.Sum256([]byte(passphrase)), nil
}
