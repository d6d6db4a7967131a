package handlers

import (
	"employee-records-backend/app/server/constants"
	"employee-records-backend/app/server/models"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) EmployeeDelete(c echo.Context) error {
	id := c.Param("id")

	rctx, cancel := a.dbctx(c.Request().Context())
	defer cancel()

	// 确认员工存在
	var employee models.Employee
	if err := a.db.WithContext(rctx).First(&employee, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erMsg(c, http.StatusNotFound, "employee not found")
		}
		a.l.Error("failed to get employee", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 删除员工。使用硬删除，软删除的行仍会占用唯一索引，导致工号与邮箱无法复用
	if err := a.db.WithContext(rctx).Unscoped().Delete(&employee).Error; err != nil {
		a.l.Error("failed to delete employee", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 清理缓存
	a.rdb.Del(c.Request().Context(), fmt.Sprintf(constants.CacheKeyEmployeeInfo, id))

	return c.NoContent(http.StatusOK)
}
