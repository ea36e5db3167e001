package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string { return string(d) }

var registerOnce sync.Once

// registerSwaggerDoc publishes doc to the swagger UI. swag panics on a second
// registration under the same name, so only the first call takes effect.
func registerSwaggerDoc(doc *openapi3.T) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(body))
	})
	return nil
}
