//go:build tools

package tools

// Tool dependencies pinned in go.mod. oapi-codegen regenerates internal/api
// from api/openapi.yaml; the goose CLI runs the same embedded migrations as
// `eonpeers migrate` against a database by hand.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
