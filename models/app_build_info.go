// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata of the running server.
//
// Date and Commit are injected by linker flags during CI/CD; Version comes
// from the linker flag or, when absent, from configuration.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"build_date,omitempty"`
	Commit  string `json:"build_commit,omitempty"`
}
