package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/storygraph/storygraph/pkg/entity"
	"github.com/storygraph/storygraph/pkg/errors"
	"github.com/storygraph/storygraph/pkg/pipeline"
	"github.com/storygraph/storygraph/pkg/render"
)

const (
	contentTypeSVG  = "image/svg+xml"
	contentTypeDOT  = "text/vnd.graphviz"
	contentTypeJSON = "application/json"

	tokenCookie = "access_token"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentTypeJSON)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleGenerate serves GET /graphs/generate/{kind}/{id}. The kind is a
// plural tag (stories, fragments, ...). Query parameters:
//
//	format    svg (default) or dot
//	engine    neato or dot, defaulting by kind
//	no_cache  bypass the render cache
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	kind, ok := entity.KindFromTag(chi.URLParam(r, "kind"))
	if !ok {
		s.writeError(w, errors.New(errors.CodeBadRequest, "unknown entity kind %q", chi.URLParam(r, "kind")))
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, errors.New(errors.CodeBadRequest, "invalid entity ID %q", chi.URLParam(r, "id")))
		return
	}

	p := pipeline.Params{
		Kind:    kind,
		ID:      id,
		Token:   callerToken(r),
		NoCache: r.URL.Query().Has("no_cache"),
	}
	if e := r.URL.Query().Get("engine"); e != "" {
		engine, err := render.ParseEngine(e)
		if err != nil {
			s.writeError(w, err)
			return
		}
		p.Engine = engine
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "svg":
		res, err := s.runner.Generate(r.Context(), p)
		if err != nil {
			s.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentTypeSVG)
		w.Write(res.SVG)
	case "dot":
		dot, err := s.runner.GraphDOT(r.Context(), p)
		if err != nil {
			s.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentTypeDOT)
		w.Write([]byte(dot))
	default:
		s.writeError(w, errors.New(errors.CodeBadRequest, "unknown format %q", format))
	}
}

type previewRequest struct {
	DOT    string `json:"dot"`
	Engine string `json:"engine"`
}

// handlePreview serves POST /graphs/preview: render caller-supplied DOT
// without touching the backend.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.CodeBadRequest, err, "decoding request body"))
		return
	}
	engine := render.Engine("")
	if req.Engine != "" {
		var err error
		engine, err = render.ParseEngine(req.Engine)
		if err != nil {
			s.writeError(w, err)
			return
		}
	}
	res, err := s.runner.Preview(r.Context(), req.DOT, engine)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypeSVG)
	w.Write(res.SVG)
}

// handlePopularTags proxies GET /tags/popular to the backend analytics
// endpoint with the caller's token.
func (s *Server) handlePopularTags(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit")
	minCount := intQuery(r, "min_count")

	gw := s.gw
	if token := callerToken(r); token != "" {
		gw = gw.WithDefaultToken(token)
	}
	tags, err := gw.TopTags(r.Context(), limit, minCount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	json.NewEncoder(w).Encode(tags)
}

// callerToken extracts the caller's bearer token from the Authorization
// header, falling back to the access_token cookie set by the web frontend.
func callerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if c, err := r.Cookie(tokenCookie); err == nil {
		return c.Value
	}
	return ""
}

func intQuery(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatus(code)
	if status >= 500 {
		s.logger.Error("request failed", "code", code, "err", err)
	}

	var resp errorResponse
	resp.Error.Code = string(code)
	resp.Error.Message = errors.UserMessage(err)
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
