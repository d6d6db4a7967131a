package handlers

import (
	"employee-records-backend/app/server/middlewares"
	"employee-records-backend/app/server/models"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) UserDelete(c echo.Context) error {
	// 提取 ID
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	id := uint(idUint64)

	rctx, cancel := a.dbctx(c.Request().Context())
	defer cancel()

	// 确认用户存在
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erMsg(c, http.StatusNotFound, "user not found")
		}
		a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 删除用户。使用硬删除，软删除的行仍会占用唯一索引，导致同名用户无法重新注册
	if err := a.db.WithContext(rctx).Unscoped().Delete(&user).Error; err != nil {
		a.l.Error("failed to delete user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if actor := middlewares.AuthUser(c); actor != nil {
		a.l.Info("user deleted", zap.Uint("id", id), zap.Uint("by", actor.ID))
	}

	return c.NoContent(http.StatusOK)
}
