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

package nsmutil

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request-code packing, as in asm-generic/ioctl.h.
const (
	iocNrBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNrShift   = 0
	iocTypeShift = iocNrShift + iocNrBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocWrite = 1
	iocRead  = 2

	// The NSM driver registers a single _IOWR ioctl.
	nsmIoctlMagic  = 0x0A
	nsmIoctlNumber = 0x00
)

// ioctlCommand derives the request code for the device's only operation:
// direction read+write, the NSM magic and command number, and the byte size
// of the message struct. The size term is computed rather than hard-coded so
// the code tracks the descriptor field widths on the build platform.
func ioctlCommand() uintptr {
	return (iocRead|iocWrite)<<iocDirShift |
		nsmIoctlMagic<<iocTypeShift |
		nsmIoctlNumber<<iocNrShift |
		unsafe.Sizeof(message{})<<iocSizeShift
}

// Submit performs one blocking round trip through the NSM device. req must be
// a complete encoded request no larger than MaxRequestSize. The returned
// slice holds exactly the bytes the driver reported writing, never the full
// response capacity.
//
// The driver reads and writes through raw addresses for the whole duration of
// the call, so the request buffer, the response buffer and the message
// referencing them are kept alive and unmoved until the syscall returns.
//
// An error from the syscall itself means the request never reached the
// module; module-reported failures travel inside the returned bytes and are
// classified by the caller.
func Submit(f *os.File, req []byte) ([]byte, error) {
	if len(req) == 0 {
		return nil, errors.New("nsmutil: empty request")
	}
	if len(req) > MaxRequestSize {
		return nil, ErrRequestTooLarge
	}

	resp := make([]byte, MaxResponseSize)
	msg := message{
		Request:  ioVec{Base: unsafe.Pointer(&req[0]), Len: uint64(len(req))},
		Response: ioVec{Base: unsafe.Pointer(&resp[0]), Len: uint64(len(resp))},
	}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), ioctlCommand(), uintptr(unsafe.Pointer(&msg)))
	runtime.KeepAlive(req)
	runtime.KeepAlive(resp)
	runtime.KeepAlive(f)
	if errno != 0 {
		return nil, os.NewSyscallError("ioctl", errno)
	}

	if msg.Response.Len > MaxResponseSize {
		return nil, fmt.Errorf("nsmutil: driver reported response length %d beyond the %d byte buffer", msg.Response.Len, MaxResponseSize)
	}
	return resp[:msg.Response.Len], nil
}
