package http

import (
	"encoding/json"
	"sync"

	"forwarding/internal/generated/servers"

	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded OpenAPI document to echo-swagger through
// the swag registry.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

// registerSwaggerDoc publishes the document under swag.Name, the instance
// echo-swagger reads by default. swag panics on a second registration, so
// building several routers in one process registers only once.
func registerSwaggerDoc() error {
	var err error
	registerDocOnce.Do(func() {
		swagger, loadErr := servers.GetSwagger()
		if loadErr != nil {
			err = loadErr
			return
		}
		raw, marshalErr := json.Marshal(swagger)
		if marshalErr != nil {
			err = marshalErr
			return
		}
		swag.Register(swag.Name, openAPIDoc{doc: string(raw)})
	})
	return err
}
