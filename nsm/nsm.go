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

// Package nsm provides typed commands for the Nitro Secure Module, layered
// on a transport that performs the raw device exchange.
//
// Every command is one self-contained round trip: the request is encoded,
// submitted, and the reply decoded and classified before anything is handed
// back. The package keeps no state between calls, so any failed call may be
// retried by the caller.
//
// Failures fall into three classes: validation errors reported before the
// transport is touched, transport errors returned unchanged from
// [transport.NSM.Send], and module-reported failures surfaced as
// [*DriverError].
package nsm

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/google/go-nsm/nsm/transport"
	"github.com/google/go-nsm/nsmutil"
)

// roundTrip executes one command against the module. The request is encoded
// as a single-entry map from tag to params, or as the bare tag string when
// params is nil. On success the payload found under tag is decoded into
// result; result may be nil for commands whose only success signal is the
// absence of an error report.
func roundTrip(n transport.NSM, tag string, params, result interface{}) error {
	var (
		req []byte
		err error
	)
	if params == nil {
		req, err = cbor.Marshal(tag)
	} else {
		req, err = cbor.Marshal(map[string]interface{}{tag: params})
	}
	if err != nil {
		return fmt.Errorf("nsm: encoding %s request: %w", tag, err)
	}
	if len(req) > nsmutil.MaxRequestSize {
		return fmt.Errorf("nsm: %s request is %d bytes: %w", tag, len(req), nsmutil.ErrRequestTooLarge)
	}

	resp, err := n.Send(req)
	if err != nil {
		return err
	}

	var fields map[string]cbor.RawMessage
	if err := cbor.Unmarshal(resp, &fields); err != nil {
		return fmt.Errorf("nsm: decoding %s response: %w", tag, err)
	}
	if raw, ok := fields["Error"]; ok {
		derr := &DriverError{Raw: raw}
		var code string
		if cbor.Unmarshal(raw, &code) == nil {
			derr.Code = code
		}
		return derr
	}
	raw, ok := fields[tag]
	if !ok {
		return fmt.Errorf("%w: no %s or Error key in reply", ErrUnexpectedResponse, tag)
	}
	if result == nil {
		return nil
	}
	if err := cbor.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("nsm: decoding %s payload: %w", tag, err)
	}
	return nil
}
