// Copyright (c) 2021, Google LLC All rights reserved.
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

package nsm

// Request payloads, shaped exactly as the module's wire format expects.

type lockPCRRequest struct {
	Index uint16 `cbor:"index"`
}

type lockPCRsRequest struct {
	Range uint16 `cbor:"range"`
}

type describePCRRequest struct {
	Index uint16 `cbor:"index"`
}

type extendPCRRequest struct {
	Index uint16 `cbor:"index"`
	Data  []byte `cbor:"data"`
}

// An AttestationRequest carries the optional caller-supplied fields bound
// into an attestation document. Nil fields are encoded as explicit nulls; the
// module distinguishes an absent field from an empty one.
type AttestationRequest struct {
	// UserData is additional data included in the document verbatim.
	UserData []byte `cbor:"user_data"`
	// Nonce is single-use data included in the document verbatim.
	Nonce []byte `cbor:"nonce"`
	// PublicKey is included in the document so that a verifier can encrypt
	// data to the enclave.
	PublicKey []byte `cbor:"public_key"`
}

// A PCRDescription is the state of a single PCR.
type PCRDescription struct {
	// Lock reports whether the PCR is locked against further extension.
	Lock bool `cbor:"lock"`
	// Data is the PCR's current value.
	Data []byte `cbor:"data"`
}

// A DeviceDescription reports the module's version, identity and PCR bank
// layout.
type DeviceDescription struct {
	VersionMajor uint16 `cbor:"version_major"`
	VersionMinor uint16 `cbor:"version_minor"`
	VersionPatch uint16 `cbor:"version_patch"`
	// ModuleID is the module's unique identifier.
	ModuleID string `cbor:"module_id"`
	// MaxPCRs is the number of PCRs the module exposes.
	MaxPCRs uint16 `cbor:"max_pcrs"`
	// LockedPCRs lists the indices of the PCRs currently locked.
	LockedPCRs []uint16 `cbor:"locked_pcrs"`
	// Digest names the hash algorithm the PCR bank uses.
	Digest string `cbor:"digest"`
}

type extendPCRResult struct {
	Data []byte `cbor:"data"`
}

type attestationResult struct {
	Document []byte `cbor:"document"`
}

type getRandomResult struct {
	Random []byte `cbor:"random"`
}
