package constants

import "time"

const (
	// CookieNameAccessToken 登录后下发访问令牌的 cookie 名称
	CookieNameAccessToken = "accessToken"

	// AuthTokenDuration 访问令牌默认有效期，可通过 TOKEN_TTL 环境变量覆盖
	AuthTokenDuration = 24 * time.Hour
)
