package response

// 业务错误码沿用 HTTP 语义：4xx 为调用方问题，5xx 上报 Sentry
var (
	ErrInvalidRequest  = newError(400, "请求参数错误")
	ErrTokenInvalid    = newError(401, "登录状态无效，请重新登录")
	ErrNotFound        = newError(404, "资源不存在")
	ErrAlreadyExists   = newError(409, "资源已存在")
	ErrInvalidPassword = newError(412, "密码错误")
	ErrDatabase        = newError(500, "系统繁忙，请稍后再试")
)
