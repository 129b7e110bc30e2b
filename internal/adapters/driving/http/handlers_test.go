package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driving"
)

// Mock services for testing

type mockSearchService struct {
	searchFn func(ctx context.Context, code string, filters domain.SearchFilters) (*domain.SearchResult, error)
}

func (m *mockSearchService) Search(ctx context.Context, code string, filters domain.SearchFilters) (*domain.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, code, filters)
	}
	return nil, errors.New("not implemented")
}

type mockCatalogService struct {
	getSpecCodeFn     func(ctx context.Context, code string) (*domain.SpecCode, error)
	listSpecCodesFn   func(ctx context.Context, division *int, limit, offset int) ([]*domain.SpecCode, error)
	getDocumentFn     func(ctx context.Context, id int64) (*domain.CodeDocument, error)
	listDocumentsFn   func(ctx context.Context, filters domain.SearchFilters, limit, offset int) ([]*domain.CodeDocument, error)
	getSectionFn      func(ctx context.Context, id int64) (*domain.CodeSection, error)
	curatedSectionsFn func(ctx context.Context, code string, filters domain.SearchFilters) ([]*domain.CuratedSection, error)
}

func (m *mockCatalogService) GetSpecCode(ctx context.Context, code string) (*domain.SpecCode, error) {
	if m.getSpecCodeFn != nil {
		return m.getSpecCodeFn(ctx, code)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCatalogService) ListSpecCodes(ctx context.Context, division *int, limit, offset int) ([]*domain.SpecCode, error) {
	if m.listSpecCodesFn != nil {
		return m.listSpecCodesFn(ctx, division, limit, offset)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCatalogService) GetDocument(ctx context.Context, id int64) (*domain.CodeDocument, error) {
	if m.getDocumentFn != nil {
		return m.getDocumentFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCatalogService) ListDocuments(ctx context.Context, filters domain.SearchFilters, limit, offset int) ([]*domain.CodeDocument, error) {
	if m.listDocumentsFn != nil {
		return m.listDocumentsFn(ctx, filters, limit, offset)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCatalogService) GetSection(ctx context.Context, id int64) (*domain.CodeSection, error) {
	if m.getSectionFn != nil {
		return m.getSectionFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCatalogService) CuratedSections(ctx context.Context, code string, filters domain.SearchFilters) ([]*domain.CuratedSection, error) {
	if m.curatedSectionsFn != nil {
		return m.curatedSectionsFn(ctx, code, filters)
	}
	return nil, errors.New("not implemented")
}

type mockMappingService struct {
	synthesizeFn func(ctx context.Context, req driving.SynthesizeRequest) (*driving.SynthesizeResult, error)
	createFn     func(ctx context.Context, req driving.CreateMappingRequest) (*domain.Mapping, error)
}

func (m *mockMappingService) Synthesize(ctx context.Context, req driving.SynthesizeRequest) (*driving.SynthesizeResult, error) {
	if m.synthesizeFn != nil {
		return m.synthesizeFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMappingService) Create(ctx context.Context, req driving.CreateMappingRequest) (*domain.Mapping, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

type mockAuthService struct {
	loginFn         func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	validateTokenFn func(ctx context.Context, token string) (*domain.AuthContext, error)
}

func (m *mockAuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil, errors.New("not implemented")
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}

// newTestServer builds a server with the given mocks, defaulting the
// rest. Routing and middleware run exactly as in production.
func newTestServer(search driving.SearchService, catalog driving.CatalogService, mapping driving.MappingService, auth driving.AuthService) *Server {
	if search == nil {
		search = &mockSearchService{}
	}
	if catalog == nil {
		catalog = &mockCatalogService{}
	}
	if mapping == nil {
		mapping = &mockMappingService{}
	}
	if auth == nil {
		auth = &mockAuthService{}
	}
	return NewServer(DefaultConfig(), search, catalog, mapping, auth, &mockPinger{}, nil)
}

func adminAuthService() *mockAuthService {
	return &mockAuthService{
		validateTokenFn: func(ctx context.Context, token string) (*domain.AuthContext, error) {
			if token != "admin-token" {
				return nil, domain.ErrTokenInvalid
			}
			return &domain.AuthContext{Subject: "admin", Role: domain.RoleAdmin}, nil
		},
	}
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleReady_DatabaseDown(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)
	server.db = &mockPinger{err: errors.New("connection refused")}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)
	server.version = "1.2.3"

	req := httptest.NewRequest("GET", "/version", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["version"] != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", response["version"])
	}
}

func TestHandleLogin(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
			if req.Username != "admin" || req.Password != "secret" {
				return nil, domain.ErrInvalidCredentials
			}
			return &domain.LoginResponse{Token: "jwt-token", ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	server := newTestServer(nil, nil, nil, auth)

	body := bytes.NewBufferString(`{"username":"admin","password":"secret"}`)
	req := httptest.NewRequest("POST", "/api/v1/auth/login", body)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp domain.LoginResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "jwt-token" {
		t.Errorf("expected token jwt-token, got %s", resp.Token)
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	server := newTestServer(nil, nil, nil, auth)

	body := bytes.NewBufferString(`{"username":"admin","password":"wrong"}`)
	req := httptest.NewRequest("POST", "/api/v1/auth/login", body)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestHandleSearch(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(ctx context.Context, code string, filters domain.SearchFilters) (*domain.SearchResult, error) {
			if code != "22 40 00" {
				t.Errorf("expected code 22 40 00, got %s", code)
			}
			if filters.DocumentFamily == nil || *filters.DocumentFamily != "IRC" {
				t.Errorf("expected document family IRC, got %v", filters.DocumentFamily)
			}
			return &domain.SearchResult{
				SpecCode:     &domain.SpecCode{Code: code, Title: "Plumbing Fixtures"},
				Sections:     []*domain.RankedSection{},
				TotalResults: 0,
				Source:       domain.SearchSourceNoMatch,
			}, nil
		},
	}
	server := newTestServer(search, nil, nil, nil)

	body := bytes.NewBufferString(`{"spec_code":"22 40 00","document_family":"IRC"}`)
	req := httptest.NewRequest("POST", "/api/v1/search", body)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var result domain.SearchResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Source != domain.SearchSourceNoMatch {
		t.Errorf("expected source no_match, got %s", result.Source)
	}
}

func TestHandleSearch_InvalidJSON(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewBufferString("invalid json"))
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleSearch_EmptySpecCode(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewBufferString(`{"spec_code":""}`))
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleSearch_UnknownSpecCode(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(ctx context.Context, code string, filters domain.SearchFilters) (*domain.SearchResult, error) {
			return nil, domain.ErrSpecCodeNotFound
		},
	}
	server := newTestServer(search, nil, nil, nil)

	body := bytes.NewBufferString(`{"spec_code":"99 99 99"}`)
	req := httptest.NewRequest("POST", "/api/v1/search", body)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestHandleGetSpecCode(t *testing.T) {
	catalog := &mockCatalogService{
		getSpecCodeFn: func(ctx context.Context, code string) (*domain.SpecCode, error) {
			return &domain.SpecCode{ID: 1, Code: code, Division: 22, Title: "Plumbing Fixtures"}, nil
		},
	}
	server := newTestServer(nil, catalog, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/spec-codes/22%2040%2000", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var code domain.SpecCode
	if err := json.NewDecoder(rr.Body).Decode(&code); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if code.Code != "22 40 00" {
		t.Errorf("expected code 22 40 00, got %s", code.Code)
	}
}

func TestHandleGetSpecCode_NotFound(t *testing.T) {
	catalog := &mockCatalogService{
		getSpecCodeFn: func(ctx context.Context, code string) (*domain.SpecCode, error) {
			return nil, domain.ErrNotFound
		},
	}
	server := newTestServer(nil, catalog, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/spec-codes/99%2099%2099", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestHandleListSpecCodes_DivisionFilter(t *testing.T) {
	catalog := &mockCatalogService{
		listSpecCodesFn: func(ctx context.Context, division *int, limit, offset int) ([]*domain.SpecCode, error) {
			if division == nil || *division != 22 {
				t.Errorf("expected division 22, got %v", division)
			}
			if limit != 10 || offset != 5 {
				t.Errorf("expected limit 10 offset 5, got %d %d", limit, offset)
			}
			return []*domain.SpecCode{{ID: 1, Code: "22 40 00"}}, nil
		},
	}
	server := newTestServer(nil, catalog, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/spec-codes?division=22&limit=10&offset=5", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleListSpecCodes_BadDivision(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/spec-codes?division=abc", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleGetCuratedSections(t *testing.T) {
	catalog := &mockCatalogService{
		curatedSectionsFn: func(ctx context.Context, code string, filters domain.SearchFilters) ([]*domain.CuratedSection, error) {
			if filters.Year == nil || *filters.Year != 2021 {
				t.Errorf("expected year 2021, got %v", filters.Year)
			}
			return []*domain.CuratedSection{
				{
					Section: &domain.CodeSection{ID: 12, Number: "P2705.1"},
					Mapping: &domain.Mapping{ID: 7, Relevance: domain.RelevancePrimary},
				},
			}, nil
		},
	}
	server := newTestServer(nil, catalog, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/spec-codes/22%2040%2000/sections?year=2021", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var curated []*domain.CuratedSection
	if err := json.NewDecoder(rr.Body).Decode(&curated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(curated) != 1 || curated[0].Section.Number != "P2705.1" {
		t.Errorf("unexpected curated sections: %+v", curated)
	}
}

func TestHandleGetDocument_BadID(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/documents/abc", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleGetSection(t *testing.T) {
	catalog := &mockCatalogService{
		getSectionFn: func(ctx context.Context, id int64) (*domain.CodeSection, error) {
			if id != 12 {
				return nil, domain.ErrNotFound
			}
			return &domain.CodeSection{ID: 12, Number: "P2705.1", Title: "Fixture connections"}, nil
		},
	}
	server := newTestServer(nil, catalog, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/sections/12", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleCreateMapping_RequiresAuth(t *testing.T) {
	server := newTestServer(nil, nil, nil, adminAuthService())

	body := bytes.NewBufferString(`{"spec_code_id":3,"section_id":12,"relevance":"primary"}`)
	req := httptest.NewRequest("POST", "/api/v1/mappings", body)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestHandleCreateMapping(t *testing.T) {
	mapping := &mockMappingService{
		createFn: func(ctx context.Context, req driving.CreateMappingRequest) (*domain.Mapping, error) {
			return &domain.Mapping{
				ID:         9,
				SpecCodeID: req.SpecCodeID,
				SectionID:  req.SectionID,
				Relevance:  req.Relevance,
			}, nil
		},
	}
	server := newTestServer(nil, nil, mapping, adminAuthService())

	body := bytes.NewBufferString(`{"spec_code_id":3,"section_id":12,"relevance":"primary"}`)
	req := httptest.NewRequest("POST", "/api/v1/mappings", body)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandleCreateMapping_Duplicate(t *testing.T) {
	mapping := &mockMappingService{
		createFn: func(ctx context.Context, req driving.CreateMappingRequest) (*domain.Mapping, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	server := newTestServer(nil, nil, mapping, adminAuthService())

	body := bytes.NewBufferString(`{"spec_code_id":3,"section_id":12,"relevance":"primary"}`)
	req := httptest.NewRequest("POST", "/api/v1/mappings", body)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", rr.Code)
	}
}

func TestHandleSynthesize(t *testing.T) {
	mapping := &mockMappingService{
		synthesizeFn: func(ctx context.Context, req driving.SynthesizeRequest) (*driving.SynthesizeResult, error) {
			return &driving.SynthesizeResult{SpecCode: req.SpecCode, Considered: 4, Created: 3}, nil
		},
	}
	server := newTestServer(nil, nil, mapping, adminAuthService())

	body := bytes.NewBufferString(`{"spec_code":"22 40 00","top_n":5}`)
	req := httptest.NewRequest("POST", "/api/v1/mappings/synthesize", body)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var result driving.SynthesizeResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Created != 3 {
		t.Errorf("expected 3 created, got %d", result.Created)
	}
}

func TestHandleSynthesize_EmptyCorpus(t *testing.T) {
	mapping := &mockMappingService{
		synthesizeFn: func(ctx context.Context, req driving.SynthesizeRequest) (*driving.SynthesizeResult, error) {
			return nil, domain.ErrEmptyCorpus
		},
	}
	server := newTestServer(nil, nil, mapping, adminAuthService())

	body := bytes.NewBufferString(`{"spec_code":"22 40 00"}`)
	req := httptest.NewRequest("POST", "/api/v1/mappings/synthesize", body)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", rr.Code)
	}
}

func TestPagination_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/documents", nil)
	limit, offset, err := pagination(req)
	if err != nil {
		t.Fatalf("pagination failed: %v", err)
	}
	if limit != 50 || offset != 0 {
		t.Errorf("expected defaults 50/0, got %d/%d", limit, offset)
	}
}

func TestPagination_Explicit(t *testing.T) {
	req := httptest.NewRequest("GET", fmt.Sprintf("/api/v1/documents?limit=%d&offset=%d", 20, 40), nil)
	limit, offset, err := pagination(req)
	if err != nil {
		t.Fatalf("pagination failed: %v", err)
	}
	if limit != 20 || offset != 40 {
		t.Errorf("expected 20/40, got %d/%d", limit, offset)
	}
}
