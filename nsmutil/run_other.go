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

//go:build !linux

package nsmutil

import (
	"errors"
	"os"
)

// ErrUnsupportedPlatform indicates that the NSM device only exists on Linux.
var ErrUnsupportedPlatform = errors.New("nsmutil: the NSM device is only available on Linux")

// Submit is not implemented on this platform.
func Submit(f *os.File, req []byte) ([]byte, error) {
	return nil, ErrUnsupportedPlatform
}
