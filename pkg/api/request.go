package api

import (
	"maps"
	"net/http"
	"net/url"
	"strings"
)

// Request describes a single API call. The zero value is a GET of the base
// URL with no parameters; refinements produce modified copies, leaving the
// receiver untouched. Request values are safe to share and reuse as
// templates.
type Request struct {
	method string
	path   []string
	params map[string]string
	token  string
}

// NewRequest returns an empty GET request.
func NewRequest() Request {
	return Request{method: http.MethodGet}
}

// Method returns a copy using the given HTTP method.
func (r Request) Method(method string) Request {
	r2 := r.clone()
	r2.method = method
	return r2
}

// Route returns a copy with the path set to the given segments. Segments are
// escaped individually, so IDs containing reserved characters are safe.
func (r Request) Route(segments ...string) Request {
	r2 := r.clone()
	r2.path = append([]string(nil), segments...)
	return r2
}

// Append returns a copy with extra segments added to the path.
func (r Request) Append(segments ...string) Request {
	r2 := r.clone()
	r2.path = append(r2.path, segments...)
	return r2
}

// SetParam returns a copy with the query parameter set, replacing any
// previous value for the same key.
func (r Request) SetParam(key, value string) Request {
	r2 := r.clone()
	if r2.params == nil {
		r2.params = make(map[string]string, 1)
	}
	r2.params[key] = value
	return r2
}

// AccessToken returns a copy carrying a bearer token that overrides the
// gateway default for this call only.
func (r Request) AccessToken(token string) Request {
	r2 := r.clone()
	r2.token = token
	return r2
}

func (r Request) clone() Request {
	r2 := r
	r2.path = append([]string(nil), r.path...)
	r2.params = maps.Clone(r.params)
	return r2
}

// URL renders the request against a base URL.
func (r Request) URL(base string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(base, "/"))
	for _, seg := range r.path {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(seg))
	}
	if len(r.params) > 0 {
		q := make(url.Values, len(r.params))
		for k, v := range r.params {
			q.Set(k, v)
		}
		sb.WriteByte('?')
		sb.WriteString(q.Encode())
	}
	return sb.String()
}

func (r Request) httpMethod() string {
	if r.method == "" {
		return http.MethodGet
	}
	return r.method
}
