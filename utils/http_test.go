package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSetHeaderInline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetHeaderInline(c, `20 - 40 0badf00d.xml`)
	expected := `inline; filename="20 - 40 0badf00d.xml"`
	if got := w.Header().Get("Content-Disposition"); got != expected {
		t.Errorf("header should be '%v', but '%v'", expected, got)
	}

	SetHeaderInline(c, `a"b.xml`)
	expected = `inline; filename="a\"b.xml"`
	if got := w.Header().Get("Content-Disposition"); got != expected {
		t.Errorf("header should be '%v', but '%v'", expected, got)
	}
}

func TestSetHeaderNoCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetHeaderNoCache(c)
	if got := w.Header().Get("Cache-Control"); got != "no-cache, no-store, must-revalidate" {
		t.Errorf("cache control should disable caching, but '%v'", got)
	}
}
