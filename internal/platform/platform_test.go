// Copyright 2025 go-highway Authors
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

package platform

import (
	"runtime"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	t.Setenv("SORTBENCH_NO_CPU_FEATURES", "")
	h := Describe()
	if h.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", h.Arch, runtime.GOARCH)
	}
	if h.CPUs < 1 {
		t.Errorf("CPUs = %d, want >= 1", h.CPUs)
	}
	if runtime.GOOS == "linux" && runtime.GOARCH == "arm64" && !contains(h.Features, "asimd") {
		t.Errorf("arm64 Features = %v, want asimd", h.Features)
	}
}

func TestDescribeNoFeatures(t *testing.T) {
	t.Setenv("SORTBENCH_NO_CPU_FEATURES", "1")
	if h := Describe(); len(h.Features) != 0 {
		t.Errorf("Features = %v, want none", h.Features)
	}

	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"false", false},
		{"0", false},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("SORTBENCH_NO_CPU_FEATURES", tt.val)
		if got := noFeaturesEnv(); got != tt.want {
			t.Errorf("noFeaturesEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestHostString(t *testing.T) {
	h := Host{OS: "linux", Arch: "amd64", CPUs: 8, Go: "go1.24.0", Features: []string{"avx2", "bmi2"}}
	want := "linux/amd64 8 CPUs go1.24.0 [avx2 bmi2]"
	if got := h.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	h.Features = nil
	if got := h.String(); strings.Contains(got, "[") {
		t.Errorf("String() = %q, want no feature list", got)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
