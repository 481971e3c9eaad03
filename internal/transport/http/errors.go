package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeUnauthorized       = "unauthorized"
	codeNoCoursesSelected  = "no_courses_selected"
	codeCourseNotFound     = "course_not_found"
	codeAlreadyEnrolled    = "already_enrolled"
	codeGatewayUnavailable = "gateway_unavailable"
	codeIncompletePayload  = "incomplete_payload"
	codeInvalidAmount      = "invalid_amount"
	codeNotificationFailed = "notification_failed"
	codeInvalidID          = "invalid_id"
	codeCourseNameRequired = "course_name_required"
	codeInvalidPrice       = "invalid_price"
	codeEmailRequired      = "email_required"
	codeEmailExists        = "email_already_registered"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
