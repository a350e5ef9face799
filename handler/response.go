package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is the error body of a JSONResponse.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON responds 200 with v as data.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
}

// JSONWithStatus responds with status and v as data.
func JSONWithStatus(status int, v any) Response {
	return jsonResponse{status: status, body: JSONResponse{Data: v}}
}

// JSONError responds with the status and key of err; errors that are not an
// HTTPError become 500 internal_error.
func JSONError(err error) Response {
	detail := &ErrorDetail{Code: ErrInternal.Key, Message: http.StatusText(http.StatusInternalServerError)}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		detail.Code = httpErr.Key
		detail.Message = err.Error()
	}
	return jsonResponse{status: StatusCode(err), body: JSONResponse{Error: detail}}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty responds 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus writes status with no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the wrapper's ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}

type templResponse struct {
	component TemplComponent
	options   []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ renders component as HTML, or as a single patch for datastar requests.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}
