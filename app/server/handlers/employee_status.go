package handlers

import (
	"employee-records-backend/app/server/constants"
	"employee-records-backend/app/server/models"
	"employee-records-backend/app/server/types"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) EmployeeStatusUpdate(c echo.Context) error {
	id := c.Param("id")

	// 绑定请求体
	var req types.EmployeeStatusRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.IsActive == nil {
		return a.erMsg(c, http.StatusBadRequest, "isActive must be a boolean value")
	}

	rctx, cancel := a.dbctx(c.Request().Context())
	defer cancel()

	// 从数据库中获得指定的员工
	var employee models.Employee
	if err := a.db.WithContext(rctx).First(&employee, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erMsg(c, http.StatusNotFound, "employee not found")
		}
		a.l.Error("failed to get employee", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 更新状态
	if err := a.db.WithContext(rctx).Model(&employee).Update("is_active", *req.IsActive).Error; err != nil {
		a.l.Error("failed to update employee status", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 清理缓存
	a.rdb.Del(c.Request().Context(), fmt.Sprintf(constants.CacheKeyEmployeeInfo, id))

	return c.JSON(http.StatusOK, employeeInfo(&employee))
}
