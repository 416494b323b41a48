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

package network_test

import (
	"crypto/sha256"
	"testing"

	"github.com/blinklabs-io/gostellar/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	testDefs := []struct {
		name       string
		passphrase string
	}{
		{name: "public", passphrase: network.PublicNetworkPassphrase},
		{name: "testnet", passphrase: network.TestNetworkPassphrase},
		{name: "standalone", passphrase: network.StandaloneNetworkPassphrase},
	}
	for _, testDef := range testDefs {
		id, err := network.ID(testDef.passphrase)
		require.NoError(t, err, testDef.name)
		expected := sha256.Sum256([]byte(testDef.passphrase))
		assert.Equal(t, expected, id, testDef.name)
	}
}

func TestIDRejectsEmptyPassphrase(t *testing.T) {
	_, err := network.ID("")
	assert.ErrorIs(t, err, network.ErrNoPassphrase)
}
