package models

// SourceAPI tags results produced by the provider-API tier. A multi-tier
// fallback chain would add further values ("cache", "static").
const SourceAPI = "api"

// Response is the uniform envelope returned by every service operation.
// Exactly one of Data and Error is populated.
type Response[T any] struct {
	Success        bool   `json:"success"`
	Data           *T     `json:"data,omitempty"`
	Error          string `json:"error,omitempty"`
	FallbackUsed   string `json:"fallback_used"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

func Ok[T any](data T, elapsedMs int64) Response[T] {
	return Response[T]{
		Success:        true,
		Data:           &data,
		FallbackUsed:   SourceAPI,
		ResponseTimeMs: elapsedMs,
	}
}

func Fail[T any](message string, elapsedMs int64) Response[T] {
	return Response[T]{
		Success:        false,
		Error:          message,
		FallbackUsed:   SourceAPI,
		ResponseTimeMs: elapsedMs,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
