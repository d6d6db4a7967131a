package handlers

import (
	"employee-records-backend/app/server/middlewares"
	"employee-records-backend/app/server/models"
	"employee-records-backend/app/server/password"
	"employee-records-backend/app/server/types"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) userMapFields(req *types.UserUpdateRequest, user *models.User) bool {
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return false
		}
		user.Username = username
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if !isValidEmail(email) {
			return false
		}
		user.Email = email
	}

	if req.Mobile != nil {
		mobile := strings.TrimSpace(*req.Mobile)
		if mobile == "" {
			return false
		}
		user.Mobile = &mobile
	}

	if req.Role != nil {
		if !isValidRole(*req.Role) {
			return false
		}
		user.Role = *req.Role
	}

	return true
}

func (a *App) UserUpdate(c echo.Context) error {
	// 提取 ID
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	id := uint(idUint64)

	// 绑定请求体
	var req types.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 至少需要更新一个字段
	if req.Username == nil && req.Password == nil && req.Email == nil && req.Mobile == nil && req.Role == nil {
		return a.erMsg(c, http.StatusBadRequest, "no data provided for update")
	}

	rctx, cancel := a.dbctx(c.Request().Context())
	defer cancel()

	// 从数据库中获得指定的用户
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erMsg(c, http.StatusNotFound, "user not found")
		}
		a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 映射字段
	if !a.userMapFields(&req, &user) {
		return a.er(c, http.StatusBadRequest)
	}
	if req.Password != nil {
		passwordHash, err := password.Hash(*req.Password)
		if err != nil {
			a.l.Error("failed to hash password", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		user.Password = passwordHash
	}

	// 更新用户信息
	if err := a.db.WithContext(rctx).Updates(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusConflict, "user already exists")
		}
		a.l.Error("failed to update user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if actor := middlewares.AuthUser(c); actor != nil {
		a.l.Info("user updated", zap.Uint("id", id), zap.Uint("by", actor.ID))
	}

	return c.JSON(http.StatusOK, userInfo(&user))
}
