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
	"errors"
	"fmt"
)

// Error codes the module reports inside an otherwise successful device call.
const (
	ErrCodeInvalidArgument  = "InvalidArgument"
	ErrCodeInvalidIndex     = "InvalidIndex"
	ErrCodeInvalidResponse  = "InvalidResponse"
	ErrCodeReadOnlyIndex    = "ReadOnlyIndex"
	ErrCodeInvalidOperation = "InvalidOperation"
	ErrCodeBufferTooBig     = "BufferTooBig"
	ErrCodeInputTooLarge    = "InputTooLarge"
	ErrCodeInternalError    = "InternalError"
)

// ErrUnexpectedResponse indicates that the module's reply decoded cleanly but
// carried neither the expected tag nor an error report.
var ErrUnexpectedResponse = errors.New("nsm: unexpected response shape")

// A DriverError is a failure reported by the module itself: the device call
// completed, but the decoded response carried an error report instead of a
// result. Code holds the module's error code when the report is one of the
// known string codes; Raw always holds the encoded error value exactly as
// received.
type DriverError struct {
	Code string
	Raw  []byte
}

func (e *DriverError) Error() string {
	if e.Code != "" {
		return "nsm: device returned error: " + e.Code
	}
	return fmt.Sprintf("nsm: device returned error: %x", e.Raw)
}
