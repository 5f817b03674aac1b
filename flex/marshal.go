// Copyright (C) 2022-2026  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

// Serialization bridging: Flex values encode as plain strings in text,
// JSON, YAML and CBOR documents. Decoding re-runs the smart constructor
// path, so storage is chosen per-content exactly as direct construction
// would - wrapped statics come back inlined or heap depending only on
// length.

package flex

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lab.nexedi.com/kirr/flexstr/mem"
)

// adopt validates s for the kind and stores it: inline-sized content is
// copied into the value, larger content adopts s without another copy.
func adopt[S any, K Str[S], H Heap[H]](v *Flex[S, K, H], s string) error {
	var k K
	sv, err := k.TryFromRaw(mem.Bytes(s))
	if err != nil {
		return err
	}
	if len(s) <= InlineCap {
		*v = FromRef[S, K, H](sv)
	} else {
		*v = fromOwned[S, K, H](s)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v *Flex[S, K, H]) MarshalText() ([]byte, error) {
	return append([]byte(nil), v.bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded value
// does not alias b.
func (v *Flex[S, K, H]) UnmarshalText(b []byte) error {
	var k K
	sv, err := k.TryFromRaw(b)
	if err != nil {
		return errors.Wrap(err, "flex: unmarshal text")
	}
	*v = FromRef[S, K, H](sv)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v *Flex[S, K, H]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Flex[S, K, H]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return errors.Wrap(adopt(v, s), "flex: unmarshal json")
}

// MarshalYAML implements yaml.Marshaler.
func (v *Flex[S, K, H]) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Flex[S, K, H]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return errors.Wrap(adopt(v, s), "flex: unmarshal yaml")
}

// MarshalCBOR implements cbor.Marshaler.
func (v *Flex[S, K, H]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(v.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (v *Flex[S, K, H]) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return errors.Wrap(adopt(v, s), "flex: unmarshal cbor")
}
