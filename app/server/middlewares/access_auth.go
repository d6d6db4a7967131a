package middlewares

import (
	"employee-records-backend/app/server/constants"
	"employee-records-backend/app/server/jwt"
	"employee-records-backend/app/server/types"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// context 中存放认证身份的键
const contextKeyAuthUser = "authUser"

// AccessAuth 校验访问令牌：未携带令牌返回 401 ，令牌无效或过期返回 403
func AccessAuth(j *jwt.JWT) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 提取 token ： cookie 优先，其次 Authorization 头
			var tokenString string
			if cookie, err := c.Cookie(constants.CookieNameAccessToken); err == nil && cookie.Value != "" {
				tokenString = cookie.Value
			} else {
				authHeader := c.Request().Header.Get("Authorization")
				if authHeader == "" {
					return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{Message: "access token is required"})
				}

				splits := strings.Split(authHeader, " ")
				if len(splits) != 2 || strings.ToLower(splits[0]) != "bearer" {
					return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{Message: "access token is required"})
				}

				tokenString = splits[1]
			}

			// 验证 token
			user, err := j.ParseUser(tokenString)
			if err != nil {
				return c.JSON(http.StatusForbidden, &types.ErrorMessage{Message: "invalid access token"})
			}

			// 设置 context
			c.Set(contextKeyAuthUser, user)

			// 继续处理
			return next(c)
		}
	}
}

// AuthUser 从 context 中取出认证身份，未经过 AccessAuth 时返回 nil
func AuthUser(c echo.Context) *jwt.User {
	if user, ok := c.Get(contextKeyAuthUser).(*jwt.User); ok {
		return user
	}

	return nil
}
