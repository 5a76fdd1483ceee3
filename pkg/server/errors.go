package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/owljoa/RustPython/pkg/codecs"
	"github.com/owljoa/RustPython/pkg/errors"
	"github.com/owljoa/RustPython/pkg/serializer"
)

// writeError writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// writeCodecError maps a registry or codec failure to its HTTP status:
// unknown names are 404, bad inputs 400, conversion failures 422.
func (s *Server) writeCodecError(w http.ResponseWriter, r *http.Request, err error) {
	var uerr *codecs.UnicodeError
	if stderrors.As(err, &uerr) {
		s.writeError(w, r, http.StatusUnprocessableEntity, uerr.Kind.Code(),
			err.Error(), false, map[string]any{
				"encoding": uerr.Encoding,
				"start":    uerr.Start,
				"end":      uerr.End,
				"reason":   uerr.Reason,
			})
		return
	}

	code := errors.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeLookup:
		status = http.StatusNotFound
	case errors.ErrCodeType, errors.ErrCodeValue:
		status = http.StatusBadRequest
	case errors.ErrCodeUnicodeDecode, errors.ErrCodeUnicodeEncode, errors.ErrCodeUnicodeTranslate:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeInternal:
		status = http.StatusInternalServerError
	}
	s.writeError(w, r, status, code, err.Error(), false, nil)
}
