package docs_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"go-jobboard-backend/docs"
	v1 "go-jobboard-backend/internal/delivery/http/v1"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestDocCoversEveryRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	r := v1.NewRouter(v1.RouterDeps{})
	for _, route := range r.Routes() {
		if strings.HasPrefix(route.Path, "/api/swagger") {
			continue
		}
		path := pathParam.ReplaceAllString(strings.TrimPrefix(route.Path, "/api"), "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "undocumented path %s", path) {
			continue
		}
		assert.Contains(t, ops, strings.ToLower(route.Method), "undocumented %s %s", route.Method, path)
	}
}

func TestDocReferencesResolve(t *testing.T) {
	rendered := docs.SwaggerInfo.ReadDoc()

	var doc struct {
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(rendered), &doc))

	refs := regexp.MustCompile(`"#/definitions/([\w.]+)"`).FindAllStringSubmatch(rendered, -1)
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		assert.Contains(t, doc.Definitions, ref[1])
	}
}
