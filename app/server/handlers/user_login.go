package handlers

import (
	"employee-records-backend/app/server/constants"
	"employee-records-backend/app/server/jwt"
	"employee-records-backend/app/server/models"
	"employee-records-backend/app/server/password"
	"employee-records-backend/app/server/types"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) UserLogin(c echo.Context) error {
	// 绑定请求体
	var req types.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写用户名或密码
	if req.Username == "" || req.Password == "" {
		return a.erMsg(c, http.StatusBadRequest, "username and password are required")
	}

	rctx, cancel := a.dbctx(c.Request().Context())
	defer cancel()

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erMsg(c, http.StatusNotFound, "user does not exist")
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 提取密码 hash 并进行校验
	if match, err := password.Verify(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		// 密码不一致
		return a.erMsg(c, http.StatusUnauthorized, "invalid user credentials")
	}

	// 签出 JWT
	expires := time.Now().Add(a.tokenTTL)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Expires:  expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 下发 cookie ，令牌本身即会话，不落任何服务端会话记录
	c.SetCookie(&http.Cookie{
		Name:     constants.CookieNameAccessToken,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   a.isProd,
		SameSite: http.SameSiteLaxMode,
	})

	// 同时在响应体中返回，方便不使用 cookie 的调用方
	return c.JSON(http.StatusOK, &types.UserLoginResponse{
		User:        *userInfo(&user),
		AccessToken: token,
	})
}
