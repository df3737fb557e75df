// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devapi implements an in-memory development server for the profile
// API consumed by the client.
//
// It serves the four endpoints the client uses (signup, login, fetch and
// update of the caller's profile) with the same status codes and error
// bodies as the production API, which makes it suitable both for local runs
// and as an end-to-end fake in tests. Users live in memory only and are lost
// when the process exits. Passwords are stored as bcrypt hashes and access
// tokens are HS256 JWTs whose subject is the user's e-mail.
package devapi
