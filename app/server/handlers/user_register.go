package handlers

import (
	"employee-records-backend/app/server/models"
	"employee-records-backend/app/server/password"
	"employee-records-backend/app/server/types"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func userInfo(user *models.User) *types.UserInfo {
	return &types.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Mobile:    user.Mobile,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func (a *App) UserRegister(c echo.Context) error {
	// 绑定请求体
	var req types.UserRegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 必填字段检查
	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)
	if req.Username == "" || req.Password == "" || req.Email == "" || req.Role == "" {
		return a.erMsg(c, http.StatusBadRequest, "all fields are required")
	}
	if !isValidEmail(req.Email) {
		return a.erMsg(c, http.StatusBadRequest, "valid email is required")
	}
	if !isValidRole(req.Role) {
		return a.erMsg(c, http.StatusBadRequest, "role must be admin or member")
	}

	// 手机号可选，空白视为未填写
	if req.Mobile != nil {
		trimmed := strings.TrimSpace(*req.Mobile)
		if trimmed == "" {
			req.Mobile = nil
		} else {
			req.Mobile = &trimmed
		}
	}

	// 处理密码
	passwordHash, err := password.Hash(req.Password)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建用户。唯一性由数据库唯一索引保证，并发的重复注册只会有一个成功
	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Role:     req.Role,
		Password: passwordHash,
	}

	rctx, cancel := a.dbctx(c.Request().Context())
	defer cancel()

	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusConflict, "user already exists")
		}
		a.l.Error("failed to create user", zap.String("username", user.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, userInfo(&user))
}
