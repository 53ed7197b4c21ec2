package http

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerPath = "/swagger/*"

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// RegisterSwagger serves the Swagger UI for doc under /swagger/.
// The document is registered with swag once per process.
func RegisterSwagger(e *echo.Echo, doc *openapi3.T) error {
	if swag.GetSwagger(swag.Name) == nil {
		raw, err := doc.MarshalJSON()
		if err != nil {
			return fmt.Errorf("marshal openapi document: %w", err)
		}
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	}

	e.GET(swaggerPath, echoSwagger.WrapHandler)
	return nil
}
