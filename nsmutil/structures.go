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

// Package nsmutil provides the raw device protocol for the Nitro Secure
// Module: the fixed-layout message handed to the driver's single ioctl, the
// derivation of that ioctl's request code, and a blocking submit primitive.
package nsmutil

import (
	"errors"
	"unsafe"
)

// Size limits fixed by the NSM driver protocol.
const (
	// MaxRequestSize is the largest encoded request the driver accepts.
	MaxRequestSize = 0x1000
	// MaxResponseSize is the capacity allocated for the driver's response.
	// It is oversized so that the largest possible reply, an attestation
	// document, always fits.
	MaxResponseSize = 0x3000
)

// ErrRequestTooLarge indicates that an encoded request exceeds
// MaxRequestSize. It is reported before any device call is attempted.
var ErrRequestTooLarge = errors.New("nsmutil: encoded request exceeds maximum request size")

// An ioVec describes one raw buffer shared with the driver. The driver reads
// the request buffer through its ioVec; it writes the response buffer through
// the other and shrinks that ioVec's Len to the number of bytes written.
type ioVec struct {
	Base unsafe.Pointer
	Len  uint64
}

// A message is the argument block for the device's single ioctl: exactly two
// ioVecs, request then response. Its size parameterizes the ioctl request
// code, so the layout must match the driver's struct exactly, with no fields
// beyond the two ioVecs.
type message struct {
	Request  ioVec
	Response ioVec
}
