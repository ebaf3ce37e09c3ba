// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrRequestBodyTooLarge is reported when a request body exceeds maxRequestBodySize.
var ErrRequestBodyTooLarge = errors.New("request body too large")
