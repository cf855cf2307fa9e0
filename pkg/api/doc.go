// Package api provides the HTTP client for the storyteller backend.
//
// # Overview
//
// All remote access goes through a [Gateway], which owns the base URL, the
// bearer token, and the underlying HTTP client. Individual calls are
// described by immutable [Request] values built up with chained refinements:
//
//	req := api.NewRequest().
//		Route("fragments", "filter").
//		SetParam("parent", id.String()).
//		SetParam("category", "fragments")
//	var refs []entity.Ref
//	err := api.SendList(ctx, gw, req, &refs)
//
// Each refinement returns a copy, so a partially built request can be shared
// and specialized without aliasing surprises.
//
// # Errors
//
// HTTP status codes are mapped onto the [errors.Code] taxonomy: 401 becomes
// ACCESS_DENIED, 404 NOT_FOUND, 5xx INTERNAL_ERROR, and so on. Transport
// failures (DNS, refused connections, timeouts) map to UNAVAILABLE. Requests
// are attempted once by default; WithRetry enables exponential backoff for
// transient failures.
//
// [errors.Code]: github.com/storygraph/storygraph/pkg/errors.Code
package api
