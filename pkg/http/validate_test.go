package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type searchParams struct {
	Name  string `query:"name" validate:"required"`
	Limit int    `query:"limit" default:"10" validate:"gte=1,lte=50"`
}

func bindContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestReadAndValidateAppliesDefaults(t *testing.T) {
	p := &searchParams{}
	if errs := ReadAndValidateRequest(bindContext("/?name=tata"), p); errs != nil {
		t.Fatalf("unexpected validation errors: %+v", errs)
	}
	if p.Name != "tata" {
		t.Fatalf("name = %q", p.Name)
	}
	if p.Limit != 10 {
		t.Fatalf("limit = %d, want default 10", p.Limit)
	}
}

func TestReadAndValidateRequiredField(t *testing.T) {
	p := &searchParams{}
	errs := ReadAndValidateRequest(bindContext("/"), p)
	if len(errs) == 0 {
		t.Fatal("expected validation error for missing name")
	}
	if errs[0].Code != "ERR_REQUIRED" {
		t.Fatalf("code = %q", errs[0].Code)
	}
	if errs[0].Field != "Name" {
		t.Fatalf("field = %q", errs[0].Field)
	}
}

func TestReadAndValidateRangeRule(t *testing.T) {
	p := &searchParams{}
	errs := ReadAndValidateRequest(bindContext("/?name=tata&limit=500"), p)
	if len(errs) == 0 {
		t.Fatal("expected validation error for limit over range")
	}
	if errs[0].Code != "ERR_LTE" {
		t.Fatalf("code = %q", errs[0].Code)
	}
}
