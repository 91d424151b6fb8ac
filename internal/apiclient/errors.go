package apiclient

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int                    `json:"status"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Errors  map[string]string      `json:"errors,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	if len(e.Errors) == 0 {
		return msg
	}
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+"="+e.Errors[f])
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}

func newAPIError(resp *Response) *APIError {
	apiErr := &APIError{}
	if len(resp.DataResponse) > 0 {
		_ = json.Unmarshal(resp.DataResponse, apiErr)
	}
	apiErr.Status = resp.Status
	if apiErr.Message == "" {
		apiErr.Message = "unexpected response"
	}
	return apiErr
}

// Decode turns a call result into T, or into *APIError for a non-2xx status.
func Decode[T any](resp *Response, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, newAPIError(resp)
	}
	out := new(T)
	if len(resp.DataResponse) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.DataResponse, out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
