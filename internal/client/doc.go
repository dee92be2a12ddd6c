// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of go-auth-gate.
//
// An [App] runs one command against the server through an
// adapter.AuthClient and prints the result as JSON. The demo command drives
// a whole signup, login and logout sequence over a single cookie jar.
package client
