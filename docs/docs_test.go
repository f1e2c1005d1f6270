package docs_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/panel-minorista/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	docs.SwaggerInfo.Host = "localhost:3000"
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "localhost:3000", doc["host"])
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/products/{id}")
	assert.Contains(t, paths, "/api/auth/login")
}

func TestSwaggerJSONCoincideConRutas(t *testing.T) {
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	var doc struct {
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, p := range []string{"/api/health", "/api/sales", "/api/purchases", "/api/dashboard/stats", "/api/inventory/replenishment", "/api/users"} {
		assert.Contains(t, doc.Paths, p)
	}
}
