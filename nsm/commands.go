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

import (
	"fmt"

	"github.com/google/go-nsm/nsm/transport"
)

// Command tags recognized by the module.
const (
	tagLockPCR     = "LockPCR"
	tagLockPCRs    = "LockPCRs"
	tagDescribePCR = "DescribePCR"
	tagExtendPCR   = "ExtendPCR"
	tagAttestation = "Attestation"
	tagDescribeNSM = "DescribeNSM"
	tagGetRandom   = "GetRandom"
)

// GetRandom bounds, fixed by the module.
const (
	minRandomLength = 1
	maxRandomLength = 256
)

// LockPCR locks the PCR at the given index against further extension.
func LockPCR(n transport.NSM, index uint16) error {
	return roundTrip(n, tagLockPCR, lockPCRRequest{Index: index}, nil)
}

// LockPCRs locks every PCR with an index below lockRange.
func LockPCRs(n transport.NSM, lockRange uint16) error {
	return roundTrip(n, tagLockPCRs, lockPCRsRequest{Range: lockRange}, nil)
}

// DescribePCR reports the lock state and current value of the PCR at the
// given index.
func DescribePCR(n transport.NSM, index uint16) (*PCRDescription, error) {
	var desc PCRDescription
	if err := roundTrip(n, tagDescribePCR, describePCRRequest{Index: index}, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

// ExtendPCR folds data into the PCR at the given index and returns the PCR's
// new value.
func ExtendPCR(n transport.NSM, index uint16, data []byte) ([]byte, error) {
	var res extendPCRResult
	if err := roundTrip(n, tagExtendPCR, extendPCRRequest{Index: index, Data: data}, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Attest asks the module to issue an attestation document binding the
// optional fields of req. It returns the complete signed document.
func Attest(n transport.NSM, req AttestationRequest) ([]byte, error) {
	var res attestationResult
	if err := roundTrip(n, tagAttestation, req, &res); err != nil {
		return nil, err
	}
	return res.Document, nil
}

// DescribeNSM reports the module's version, identity and PCR bank layout.
func DescribeNSM(n transport.NSM) (*DeviceDescription, error) {
	var desc DeviceDescription
	if err := roundTrip(n, tagDescribeNSM, nil, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

// GetRandom returns length bytes of module-generated entropy. length must be
// within [1, 256]. The module chooses how much entropy it hands back per
// call; the result is truncated to the requested length.
func GetRandom(n transport.NSM, length int) ([]byte, error) {
	if length < minRandomLength || length > maxRandomLength {
		return nil, fmt.Errorf("nsm: random length %d is out of range [%d, %d]", length, minRandomLength, maxRandomLength)
	}
	var res getRandomResult
	if err := roundTrip(n, tagGetRandom, nil, &res); err != nil {
		return nil, err
	}
	if len(res.Random) < length {
		return nil, fmt.Errorf("%w: module returned %d random bytes, want at least %d", ErrUnexpectedResponse, len(res.Random), length)
	}
	return res.Random[:length], nil
}
