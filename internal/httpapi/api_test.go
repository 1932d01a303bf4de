package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employees-api/internal/config"
	"employees-api/internal/db"
	"employees-api/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := log.New(io.Discard, "", 0)
	database, err := db.Connect(config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "employees.db"),
		DBLogLevel:   "silent",
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	require.NoError(t, db.EnsureSchema(context.Background(), database))

	server := httptest.NewServer(NewHandler(service.NewEmployeeService(database), logger))
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestEmployeeLifecycle(t *testing.T) {
	server := newTestServer(t)

	status, payload := call(t, server, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), payload["totalEmployees"])
	assert.Equal(t, float64(0), payload["averageSalary"])
	assert.Equal(t, []interface{}{}, payload["byDepartment"])

	status, payload = call(t, server, http.MethodPost, "/api/employees",
		`{"name":"A","email":"a@x.com","department":"Eng","position":"SWE","salary":100000,"hire_date":"2024-01-01"}`)
	require.Equal(t, http.StatusOK, status)
	id, ok := payload["id"].(float64)
	require.True(t, ok)
	require.Positive(t, id)

	status, payload = call(t, server, http.MethodGet, fmt.Sprintf("/api/employees/%d", int64(id)), "")
	require.Equal(t, http.StatusOK, status)
	employee := payload["employee"].(map[string]interface{})
	assert.Equal(t, id, employee["id"])
	assert.Equal(t, "A", employee["name"])
	assert.Equal(t, "a@x.com", employee["email"])
	assert.Equal(t, "Eng", employee["department"])
	assert.Equal(t, "SWE", employee["position"])
	assert.Equal(t, float64(100000), employee["salary"])
	assert.Equal(t, "2024-01-01", employee["hire_date"])
	assert.Contains(t, employee, "phone")
	assert.Nil(t, employee["phone"])
	assert.NotEmpty(t, employee["created_at"])

	status, _ = call(t, server, http.MethodPost, "/api/employees",
		`{"name":"B","email":"a@x.com","department":"Eng","position":"SWE","salary":1,"hire_date":"2024-01-01"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, payload = call(t, server, http.MethodPost, "/api/employees", `{"name":"C"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, payload["error"], "Missing required fields")
	assert.Equal(t, []interface{}{"email", "department", "position", "salary", "hire_date"}, payload["fields"])

	status, _ = call(t, server, http.MethodPut, "/api/employees/999",
		`{"name":"X","email":"x@x.com","department":"Eng","position":"SWE","salary":1,"hire_date":"2024-01-01"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, payload = call(t, server, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload["employees"], 1)

	status, _ = call(t, server, http.MethodDelete, fmt.Sprintf("/api/employees/%d", int64(id)), "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, server, http.MethodGet, fmt.Sprintf("/api/employees/%d", int64(id)), "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, server, http.MethodDelete, fmt.Sprintf("/api/employees/%d", int64(id)), "")
	assert.Equal(t, http.StatusNotFound, status)
}
