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

//go:build linux

// Package linuxnsm provides access to the Nitro Secure Module via its
// character device.
package linuxnsm

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/go-nsm/nsm/transport"
	"github.com/google/go-nsm/nsmutil"
)

// DevicePath is the well-known path of the NSM character device.
const DevicePath = "/dev/nsm"

// ErrFileIsNotDevice indicates that the NSM file mode was not a device.
var ErrFileIsNotDevice = errors.New("NSM file is not a device")

// Open opens the NSM device file at the given path. The device is opened for
// reading only; all data flows through the device's ioctl.
func Open(path string) (transport.NSMCloser, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.Mode()&os.ModeDevice == 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrFileIsNotDevice, fi.Mode().String(), path)
	}
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &deviceNSM{file: f}, nil
}

// deviceNSM is a connection to the local NSM device. It owns the open file
// handle exclusively.
type deviceNSM struct {
	file *os.File
}

// Send implements [transport.NSM].
func (d *deviceNSM) Send(req []byte) ([]byte, error) {
	return nsmutil.Submit(d.file, req)
}

// Close implements [transport.NSMCloser].
func (d *deviceNSM) Close() error {
	return d.file.Close()
}
