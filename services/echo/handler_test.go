// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func invoke(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (EchoResponse, map[string]any) {
	t.Helper()
	var resp EchoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	return resp, body
}

func TestInvoke_EchoesEvent(t *testing.T) {
	rec := invoke(t, `{"key1": "value1", "nested": {"n": 1}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp, body := decodeEnvelope(t, rec)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Hello from Lambda!", body["message"])
	event, ok := body["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "value1", event["key1"])
	assert.Equal(t, map[string]any{"n": float64(1)}, event["nested"])
}

func TestInvoke_BodyIsAJSONString(t *testing.T) {
	rec := invoke(t, `{"a": 1}`)

	// The envelope's body field must be a string, not a nested object.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.True(t, strings.HasPrefix(string(raw["body"]), `"`))
}

func TestInvoke_EmptyBody(t *testing.T) {
	rec := invoke(t, "")

	require.Equal(t, http.StatusOK, rec.Code)
	_, body := decodeEnvelope(t, rec)
	assert.Equal(t, "Hello from Lambda!", body["message"])
	assert.Nil(t, body["event"])
}

func TestInvoke_InvalidJSON(t *testing.T) {
	rec := invoke(t, "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON event")
}

func TestInvoke_ArrayAndScalarEvents(t *testing.T) {
	for _, payload := range []string{`[1, 2, 3]`, `"just a string"`, `42`, `null`} {
		rec := invoke(t, payload)
		require.Equal(t, http.StatusOK, rec.Code, "payload %s", payload)
	}
}

func TestHealth(t *testing.T) {
	router := NewRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
