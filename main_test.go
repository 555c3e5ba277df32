package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func serve(target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPing(t *testing.T) {
	w := serve("/ping")
	if w.Code != http.StatusOK {
		t.Errorf("status should be 200, but %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Errorf("body should contain pong, but '%v'", w.Body.String())
	}
}

func TestMetrics(t *testing.T) {
	if w := serve("/?min=20&max=40"); w.Code != http.StatusOK {
		t.Fatalf("status should be 200, but %d", w.Code)
	}
	w := serve("/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status should be 200, but %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `fsxchallenge_challenges_total{result="ok"}`) {
		t.Error("metrics should count generated challenges")
	}
}

func TestSwagger(t *testing.T) {
	w := serve("/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("status should be 200, but %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"FSX Challenge API"`) {
		t.Error("swagger document should be served")
	}
}

func TestForm(t *testing.T) {
	w := serve("/")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `name="outer_score"`) {
		t.Errorf("form should be served, but %d", w.Code)
	}
}
