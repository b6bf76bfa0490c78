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

package linuxnsm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-nsm/nsm"
)

func TestOpenRejectsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nsm")
	if err := os.WriteFile(path, []byte{0}, 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); !errors.Is(err, ErrFileIsNotDevice) {
		t.Errorf("Open(%q) = %v, want ErrFileIsNotDevice", path, err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nsm")
	if _, err := Open(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(%q) = %v, want ErrNotExist", path, err)
	}
}

// TestLocalNSM checks the connection to a real module, when one is present.
func TestLocalNSM(t *testing.T) {
	conn, err := Open(DevicePath)
	for _, skipErr := range []error{os.ErrNotExist, os.ErrPermission, ErrFileIsNotDevice} {
		if errors.Is(err, skipErr) {
			t.Skipf("%v", err)
		}
	}
	if err != nil {
		t.Fatalf("Failed to open NSM: %v", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			t.Fatalf("conn.Close() = %v", err)
		}
	}()

	// Ask the module to describe itself as a basic consistency check.
	desc, err := nsm.DescribeNSM(conn)
	if err != nil {
		t.Fatalf("DescribeNSM() = %v", err)
	}
	if desc.MaxPCRs == 0 {
		t.Error("DescribeNSM() reported zero PCRs")
	}
	t.Logf("Module ID: %q", desc.ModuleID)
}
