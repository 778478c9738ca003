package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Boolean Truth Table API", parsed.Info["title"])
	assert.Contains(t, parsed.Paths, "/api/v1/tables")
	assert.Contains(t, parsed.Paths["/api/v1/tables"], "post")
	assert.Contains(t, parsed.Paths, "/api/v1/tables/{id}/markdown")
}
