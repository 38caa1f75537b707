package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthone/clinic-api/pkg/httputil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type payload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.POST("/things/:id", func(c *gin.Context) {
		id, ok := ParamID(c, "id")
		if !ok {
			return
		}
		var req payload
		if !BindJSON(c, &req) {
			return
		}
		httputil.RespondWithData(c, gin.H{"id": id, "name": req.Name})
	})
	return r
}

func post(t *testing.T, path, body string) (int, httputil.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, req)

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestParamIDAndBind(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name    string
		path    string
		body    string
		status  int
		message string
	}{
		{"ok", "/things/" + id, `{"name":"x"}`, http.StatusOK, ""},
		{"bad id", "/things/42", `{"name":"x"}`, http.StatusBadRequest, "Invalid id"},
		{"missing field", "/things/" + id, `{}`, http.StatusBadRequest, "Please provide all required fields"},
		{"empty body", "/things/" + id, ``, http.StatusBadRequest, "Please provide all required fields"},
		{"bad email", "/things/" + id, `{"name":"x","email":"nope"}`, http.StatusBadRequest, "Invalid email format"},
		{"malformed", "/things/" + id, `{"name":`, http.StatusBadRequest, "Invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := post(t, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, resp.Message)
			assert.Equal(t, tt.status == http.StatusOK, resp.Success)
		})
	}
}
