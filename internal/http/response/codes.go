package response

import "net/http"

// 业务状态码，成功为 0，错误沿用 HTTP 状态
const (
	CodeOK              = 0
	CodeBadRequest      = http.StatusBadRequest
	CodeUnauthorized    = http.StatusUnauthorized
	CodeNotFound        = http.StatusNotFound
	CodeTooLarge        = http.StatusRequestEntityTooLarge
	CodeTooManyRequests = http.StatusTooManyRequests
	CodeInternal        = http.StatusInternalServerError
)
