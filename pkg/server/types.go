package server

import "time"

// ErrorResponse represents structured error responses.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// ConvertRequest is the body of POST /v1/encode and POST /v1/decode.
// Encode reads Text; decode reads Data (base64 in the JSON form). Errors
// names the error policy and defaults to strict.
type ConvertRequest struct {
	Encoding string `json:"encoding"`
	Errors   string `json:"errors,omitempty"`
	Text     string `json:"text,omitempty"`
	Data     []byte `json:"data,omitempty"`
}

// ConvertResponse carries the conversion result. Data is set by encode,
// Text by decode. Len reports how many input elements were consumed:
// characters for encode, bytes for decode.
type ConvertResponse struct {
	Encoding string `json:"encoding"`
	Errors   string `json:"errors"`
	Text     string `json:"text,omitempty"`
	Data     []byte `json:"data,omitempty"`
	Len      int    `json:"len"`
}

// EncodingsResponse lists the resolvable built-in encoding names.
type EncodingsResponse struct {
	Encodings []string `json:"encodings"`
}

// ErrorHandlersResponse lists the registered error-handler names.
type ErrorHandlersResponse struct {
	Handlers []string `json:"handlers"`
}
