// Package openapi embeds the OpenAPI description of the flight engine API,
// served by the API server at /openapi.yaml.
package openapi

import _ "embed"

// Document contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var Document []byte
