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

// Package platform describes the host a benchmark ran on.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Host is a short description of the machine and Go runtime.
type Host struct {
	OS       string
	Arch     string
	CPUs     int
	Go       string
	Features []string
}

// Describe returns the current host. Feature detection is skipped when
// SORTBENCH_NO_CPU_FEATURES is set.
func Describe() Host {
	h := Host{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
		CPUs: runtime.GOMAXPROCS(0),
		Go:   runtime.Version(),
	}
	if !noFeaturesEnv() {
		h.Features = cpuFeatures()
	}
	return h
}

// String returns a single line such as "linux/amd64 8 CPUs go1.24.0 [avx2 bmi2]".
func (h Host) String() string {
	s := fmt.Sprintf("%s/%s %d CPUs %s", h.OS, h.Arch, h.CPUs, h.Go)
	if len(h.Features) > 0 {
		s += " [" + strings.Join(h.Features, " ") + "]"
	}
	return s
}

// noFeaturesEnv reports whether SORTBENCH_NO_CPU_FEATURES asks to skip
// detection. Values strconv.ParseBool rejects, such as "yes", count as set.
func noFeaturesEnv() bool {
	v := os.Getenv("SORTBENCH_NO_CPU_FEATURES")
	if v == "" {
		return false
	}
	off, err := strconv.ParseBool(v)
	return err != nil || off
}
