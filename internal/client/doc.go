// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the Coffee Notes client runtime.
//
// It resolves the anonymous session of this client, attaches it and the
// logger to the context and hands control to the terminal board.
package client
