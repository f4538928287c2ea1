package entities

// DecidirResult wraps the payload of a successful gateway call together with its HTTP status.
type DecidirResult[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Result  T      `json:"result"`
}

// DecidirErrorInfo is the standard error shape answered by the gateway on non-2xx calls.
type DecidirErrorInfo struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Result  map[string]any `json:"result,omitempty"`
}
