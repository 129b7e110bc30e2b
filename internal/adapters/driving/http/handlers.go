package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// SearchRequest asks which code sections govern a spec code
// @Description Spec code search request
type SearchRequest struct {
	SpecCode       string  `json:"spec_code" example:"22 40 00"`
	Jurisdiction   *string `json:"jurisdiction,omitempty" example:"CA"`
	Year           *int    `json:"year,omitempty" example:"2021"`
	DocumentFamily *string `json:"document_family,omitempty" example:"IRC"`
}

func (r SearchRequest) filters() domain.SearchFilters {
	return domain.SearchFilters{
		Jurisdiction:   r.Jurisdiction,
		Year:           r.Year,
		DocumentFamily: r.DocumentFamily,
	}
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks database and cache connections)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A dependency is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleLogin godoc
// @Summary      Admin login
// @Description  Authenticate with username and password to receive a JWT token for the write surface
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Login credentials"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid credentials"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Login(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			writeError(w, http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Search endpoint

// handleSearch godoc
// @Summary      Search code sections for a spec code
// @Description  Resolves a CSI spec code to the building code sections governing it. Curated mappings answer first; keyword-match suggestions fill in when no curation exists.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      SearchRequest  true  "Spec code and optional document filters"
// @Success      200      {object}  domain.SearchResult
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      404      {object}  ErrorResponse  "Spec code not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /search [post]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SpecCode == "" {
		writeError(w, http.StatusBadRequest, "spec_code is required")
		return
	}

	result, err := s.searchService.Search(r.Context(), req.SpecCode, req.filters())
	if err != nil {
		switch err {
		case domain.ErrSpecCodeNotFound:
			writeError(w, http.StatusNotFound, "spec code not found")
		default:
			writeError(w, http.StatusInternalServerError, "search failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Catalog endpoints

// handleListSpecCodes godoc
// @Summary      List spec codes
// @Description  Returns spec codes with pagination, optionally filtered by CSI division
// @Tags         Catalog
// @Produce      json
// @Param        division  query     int  false  "CSI division number"
// @Param        limit     query     int  false  "Page size (default 50)"
// @Param        offset    query     int  false  "Page offset"
// @Success      200       {array}   domain.SpecCode
// @Failure      400       {object}  ErrorResponse  "Invalid query parameter"
// @Router       /spec-codes [get]
func (s *Server) handleListSpecCodes(w http.ResponseWriter, r *http.Request) {
	division, err := queryInt(r, "division")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid division")
		return
	}
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pagination")
		return
	}

	codes, err := s.catalogService.ListSpecCodes(r.Context(), division, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list spec codes")
		return
	}

	writeJSON(w, http.StatusOK, codes)
}

// handleGetSpecCode godoc
// @Summary      Get a spec code
// @Description  Retrieves a spec code by its code string
// @Tags         Catalog
// @Produce      json
// @Param        code  path      string  true  "Spec code (e.g. 22 40 00)"
// @Success      200   {object}  domain.SpecCode
// @Failure      404   {object}  ErrorResponse  "Spec code not found"
// @Router       /spec-codes/{code} [get]
func (s *Server) handleGetSpecCode(w http.ResponseWriter, r *http.Request) {
	code, err := s.catalogService.GetSpecCode(r.Context(), r.PathValue("code"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "spec code not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to get spec code")
		}
		return
	}

	writeJSON(w, http.StatusOK, code)
}

// handleGetCuratedSections godoc
// @Summary      List curated sections for a spec code
// @Description  Returns the curated mappings for a spec code with their sections, optionally filtered by document
// @Tags         Catalog
// @Produce      json
// @Param        code             path      string  true   "Spec code"
// @Param        document_family  query     string  false  "Document family (e.g. IRC)"
// @Param        year             query     int     false  "Document year"
// @Param        jurisdiction     query     string  false  "Document jurisdiction"
// @Success      200              {array}   domain.CuratedSection
// @Failure      404              {object}  ErrorResponse  "Spec code not found"
// @Router       /spec-codes/{code}/sections [get]
func (s *Server) handleGetCuratedSections(w http.ResponseWriter, r *http.Request) {
	filters, err := queryFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameter")
		return
	}

	curated, err := s.catalogService.CuratedSections(r.Context(), r.PathValue("code"), filters)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSpecCodeNotFound):
			writeError(w, http.StatusNotFound, "spec code not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to list curated sections")
		}
		return
	}

	writeJSON(w, http.StatusOK, curated)
}

// handleListDocuments godoc
// @Summary      List code documents
// @Description  Returns code documents matching the filters with pagination
// @Tags         Catalog
// @Produce      json
// @Param        document_family  query     string  false  "Document family"
// @Param        year             query     int     false  "Document year"
// @Param        jurisdiction     query     string  false  "Document jurisdiction"
// @Param        limit            query     int     false  "Page size (default 50)"
// @Param        offset           query     int     false  "Page offset"
// @Success      200              {array}   domain.CodeDocument
// @Failure      400              {object}  ErrorResponse  "Invalid query parameter"
// @Router       /documents [get]
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	filters, err := queryFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameter")
		return
	}
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pagination")
		return
	}

	docs, err := s.catalogService.ListDocuments(r.Context(), filters, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// handleGetDocument godoc
// @Summary      Get a code document
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "Document ID"
// @Success      200  {object}  domain.CodeDocument
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /documents/{id} [get]
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	doc, err := s.catalogService.GetDocument(r.Context(), id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "document not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to get document")
		}
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleGetSection godoc
// @Summary      Get a code section
// @Description  Retrieves a code section by ID with its parent document resolved
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "Section ID"
// @Success      200  {object}  domain.CodeSection
// @Failure      404  {object}  ErrorResponse  "Section not found"
// @Router       /sections/{id} [get]
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	section, err := s.catalogService.GetSection(r.Context(), id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "section not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to get section")
		}
		return
	}

	writeJSON(w, http.StatusOK, section)
}

// Mapping endpoints

// handleCreateMapping godoc
// @Summary      Create a curated mapping
// @Description  Persists a single curator-supplied mapping between a spec code and a section (admin only)
// @Tags         Mappings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.CreateMappingRequest  true  "Mapping to create"
// @Success      201      {object}  domain.Mapping
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      403      {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      404      {object}  ErrorResponse  "Spec code or section not found"
// @Failure      409      {object}  ErrorResponse  "Pair already mapped"
// @Router       /mappings [post]
func (s *Server) handleCreateMapping(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mapping, err := s.mappingService.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid relevance")
		case errors.Is(err, domain.ErrSpecCodeNotFound), errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "spec code or section not found")
		case errors.Is(err, domain.ErrAlreadyExists):
			writeError(w, http.StatusConflict, "pair already mapped")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create mapping")
		}
		return
	}

	writeJSON(w, http.StatusCreated, mapping)
}

// handleSynthesize godoc
// @Summary      Synthesize mappings from keyword matches
// @Description  Runs the keyword matcher for a spec code and persists the accepted matches as curated mappings, skipping pairs that already exist (admin only)
// @Tags         Mappings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.SynthesizeRequest  true  "Synthesis parameters"
// @Success      200      {object}  driving.SynthesizeResult
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      403      {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      404      {object}  ErrorResponse  "Spec code not found"
// @Failure      422      {object}  ErrorResponse  "No sections available to match against"
// @Router       /mappings/synthesize [post]
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req driving.SynthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SpecCode == "" {
		writeError(w, http.StatusBadRequest, "spec_code is required")
		return
	}

	result, err := s.mappingService.Synthesize(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSpecCodeNotFound):
			writeError(w, http.StatusNotFound, "spec code not found")
		case errors.Is(err, domain.ErrEmptyCorpus):
			writeError(w, http.StatusUnprocessableEntity, "no sections available to match against")
		default:
			writeError(w, http.StatusInternalServerError, "synthesis failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// pathID parses the {id} path segment as an int64
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// queryInt parses an optional integer query parameter
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// queryFilters assembles document filters from query parameters
func queryFilters(r *http.Request) (domain.SearchFilters, error) {
	var filters domain.SearchFilters
	if family := r.URL.Query().Get("document_family"); family != "" {
		filters.DocumentFamily = &family
	}
	if jurisdiction := r.URL.Query().Get("jurisdiction"); jurisdiction != "" {
		filters.Jurisdiction = &jurisdiction
	}
	year, err := queryInt(r, "year")
	if err != nil {
		return filters, err
	}
	filters.Year = year
	return filters, nil
}

// pagination parses limit/offset query parameters with defaults
func pagination(r *http.Request) (limit, offset int, err error) {
	limit = 50
	if l, err := queryInt(r, "limit"); err != nil {
		return 0, 0, err
	} else if l != nil {
		limit = *l
	}
	if o, err := queryInt(r, "offset"); err != nil {
		return 0, 0, err
	} else if o != nil {
		offset = *o
	}
	return limit, offset, nil
}
