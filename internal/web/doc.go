// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

// Package web exposes the board service over HTTP. It owns the JSON
// request/response shapes, bearer-token authentication middleware, and the
// mapping from domain errors to status codes. Everything below this package
// speaks domain types and tagged errors; nothing below it knows about HTTP.
package web
