package types

// PressRequest is the body of POST /api/press.
type PressRequest struct {
	State  State  `json:"state"`
	Script string `json:"script"`
}

// PressResponse is the reply to POST /api/press.
type PressResponse struct {
	State State `json:"state"`
}

// EvaluateRequest is the body of POST /api/evaluate.
type EvaluateRequest struct {
	A  string    `json:"a"`
	B  string    `json:"b"`
	Op Operation `json:"op"`
}

// EvaluateResponse is the reply to POST /api/evaluate.
type EvaluateResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is returned with any non-2xx API status.
type ErrorResponse struct {
	Error string `json:"error"`
}
