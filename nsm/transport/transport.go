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

// Package transport implements types for talking to a Nitro Secure Module.
package transport

import "io"

// NSM represents a logical connection to a Nitro Secure Module.
//
// Send performs one complete exchange: it hands the module an encoded request
// and returns the module's raw encoded response. Implementations are not
// required to be safe for concurrent use; callers serialize access to a
// single connection.
type NSM interface {
	Send(req []byte) ([]byte, error)
}

// NSMCloser is an NSM that can be closed when the connection is no longer
// needed.
type NSMCloser interface {
	NSM
	io.Closer
}
