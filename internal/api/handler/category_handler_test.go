package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
	"github.com/inventoryapi/inventory-system/internal/core/ports"
)

type stubCategoryService struct {
	getAllFn  func(ctx context.Context) ([]ports.CategoryDTO, error)
	getByIDFn func(ctx context.Context, id int) (*ports.CategoryDTO, error)
	createFn  func(ctx context.Context, name string) (*ports.CategoryDTO, error)
	updateFn  func(ctx context.Context, id int, name string) (*ports.CategoryDTO, error)
	deleteFn  func(ctx context.Context, id int) error
}

func (s *stubCategoryService) GetAll(ctx context.Context) ([]ports.CategoryDTO, error) {
	return s.getAllFn(ctx)
}

func (s *stubCategoryService) GetByID(ctx context.Context, id int) (*ports.CategoryDTO, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCategoryService) Create(ctx context.Context, name string) (*ports.CategoryDTO, error) {
	return s.createFn(ctx, name)
}

func (s *stubCategoryService) Update(ctx context.Context, id int, name string) (*ports.CategoryDTO, error) {
	return s.updateFn(ctx, id, name)
}

func (s *stubCategoryService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func newParamContext(t *testing.T, method, target, body, paramName, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramName)
	c.SetParamValues(paramValue)
	return c, rec
}

func TestCategoryHandler_List(t *testing.T) {
	stub := &stubCategoryService{
		getAllFn: func(ctx context.Context) ([]ports.CategoryDTO, error) {
			return []ports.CategoryDTO{
				{ID: 1, Name: "Electronics", ProductCount: 3},
				{ID: 2, Name: "Books", ProductCount: 0},
			}, nil
		},
	}
	handler := NewCategoryHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/categories", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []ports.CategoryDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0].ProductCount != 3 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	stub := &stubCategoryService{
		getByIDFn: func(ctx context.Context, id int) (*ports.CategoryDTO, error) {
			return nil, domain.ErrCategoryNotFound
		},
	}
	handler := NewCategoryHandler(stub)

	c, _ := newParamContext(t, http.MethodGet, "/api/categories/99", "", "id", "99")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryHandler_Get_NonNumericID(t *testing.T) {
	stub := &stubCategoryService{
		getByIDFn: func(ctx context.Context, id int) (*ports.CategoryDTO, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCategoryHandler(stub)

	c, _ := newParamContext(t, http.MethodGet, "/api/categories/abc", "", "id", "abc")

	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCategoryHandler_Create(t *testing.T) {
	stub := &stubCategoryService{
		createFn: func(ctx context.Context, name string) (*ports.CategoryDTO, error) {
			if name != "Garden" {
				t.Fatalf("unexpected name %q", name)
			}
			return &ports.CategoryDTO{ID: 5, Name: name}, nil
		},
	}
	handler := NewCategoryHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/categories", `{"name":"Garden"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	stub := &stubCategoryService{
		createFn: func(ctx context.Context, name string) (*ports.CategoryDTO, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCategoryHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/categories", `{}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCategoryHandler_Update(t *testing.T) {
	stub := &stubCategoryService{
		updateFn: func(ctx context.Context, id int, name string) (*ports.CategoryDTO, error) {
			if id != 3 || name != "Outdoors" {
				t.Fatalf("unexpected args: %d %q", id, name)
			}
			return &ports.CategoryDTO{ID: id, Name: name, ProductCount: 2}, nil
		},
	}
	handler := NewCategoryHandler(stub)

	c, rec := newParamContext(t, http.MethodPut, "/api/categories/3", `{"name":"Outdoors"}`, "id", "3")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCategoryHandler_Delete(t *testing.T) {
	stub := &stubCategoryService{
		deleteFn: func(ctx context.Context, id int) error {
			if id != 4 {
				t.Fatalf("unexpected id %d", id)
			}
			return nil
		},
	}
	handler := NewCategoryHandler(stub)

	c, rec := newParamContext(t, http.MethodDelete, "/api/categories/4", "", "id", "4")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCategoryHandler_Delete_Conflict(t *testing.T) {
	stub := &stubCategoryService{
		deleteFn: func(ctx context.Context, id int) error {
			return domain.ErrCategoryHasProducts
		},
	}
	handler := NewCategoryHandler(stub)

	c, _ := newParamContext(t, http.MethodDelete, "/api/categories/1", "", "id", "1")

	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrCategoryHasProducts) {
		t.Fatalf("expected ErrCategoryHasProducts, got %v", err)
	}
}
