package http

const (
	CodeUnknown     = "UNKNOWN"
	CodeInvalidJSON = "INVALID_JSON"
	CodeBadRequest  = "BAD_REQUEST"
	CodeInvalidPath = "INVALID_PATH"
)
