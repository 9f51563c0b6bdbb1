package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOpenAPI3Spec(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ServeOpenAPI3Spec(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var spec OpenAPI3Spec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, "3.0.3", spec.OpenAPI)
	assert.Len(t, spec.Servers, 2)
	assert.Contains(t, spec.Paths, "/sessions/{sessionId}/chat/messages")

	schemas, ok := spec.Components["schemas"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, schemas, "handler.ProblemDetails")
}

func TestTransformRefs(t *testing.T) {
	input := map[string]interface{}{
		"schema": map[string]interface{}{"$ref": "#/definitions/handler.BudgetResponse"},
		"parameters": []interface{}{
			map[string]interface{}{"name": "sessionId", "in": "path", "type": "string", "required": true},
		},
	}

	out := transformRefs(input).(map[string]interface{})

	schema := out["schema"].(map[string]interface{})
	assert.Equal(t, "#/components/schemas/handler.BudgetResponse", schema["$ref"])

	param := out["parameters"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"type": "string"}, param["schema"])
	assert.Equal(t, "path", param["in"])
}
