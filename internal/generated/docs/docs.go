// Package docs registers the API definition with swag so echo-swagger can
// serve it under /swagger/.
package docs

import (
	"encoding/json"

	"dispatch/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dispatch API",
	Description:      "Order dispatch, delivery assignment and delivery tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate(),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// docTemplate renders the embedded OpenAPI document as JSON.
func docTemplate() string {
	doc, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
