package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

var registerOnce sync.Once

// APIDocument is the OpenAPI 3 description of the HTTP surface, validated at start-up.
type APIDocument struct {
	spec *openapi3.T
	json []byte
}

// LoadAPIDocument parses and validates the embedded document and registers it with swag
// so the /swagger UI serves it.
func LoadAPIDocument(ctx context.Context) (*APIDocument, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	doc := &APIDocument{spec: spec, json: raw}
	registerOnce.Do(func() {
		swag.Register(swag.Name, doc)
	})

	return doc, nil
}

// ReadDoc implements swag.Swagger.
func (d *APIDocument) ReadDoc() string {
	return string(d.json)
}

// Version is info.version of the document.
func (d *APIDocument) Version() string {
	return d.spec.Info.Version
}

// HasOperation reports whether the document describes method on path.
func (d *APIDocument) HasOperation(method, path string) bool {
	item := d.spec.Paths.Find(path)
	return item != nil && item.GetOperation(method) != nil
}

// Serve handles GET /openapi.json.
func (d *APIDocument) Serve(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, d.json)
}
