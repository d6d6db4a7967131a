package handlers

import (
	"employee-records-backend/app/server/constants"
	"employee-records-backend/app/server/models"
	"employee-records-backend/app/server/types"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) employeeMapFields(req *types.EmployeeUpdateRequest, employee *models.Employee) bool {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return false
		}
		employee.Name = name
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if !isValidEmail(email) {
			return false
		}
		employee.Email = email
	}

	if req.Mobile != nil {
		mobile := strings.TrimSpace(*req.Mobile)
		if !isNumeric(mobile) {
			return false
		}
		employee.Mobile = mobile
	}

	if req.Designation != nil {
		designation := strings.TrimSpace(*req.Designation)
		if designation == "" {
			return false
		}
		employee.Designation = designation
	}

	if req.Gender != nil {
		if !isValidGender(*req.Gender) {
			return false
		}
		employee.Gender = *req.Gender
	}

	if req.Course != nil {
		if !isValidCourse(*req.Course) {
			return false
		}
		employee.Course = *req.Course
	}

	if req.Image != nil {
		if !isValidImageURL(*req.Image) {
			return false
		}
		employee.Image = *req.Image
	}

	return true
}

func (a *App) EmployeeUpdate(c echo.Context) error {
	id := c.Param("id")

	// 绑定请求体
	var req types.EmployeeUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 至少需要更新一个字段
	if req.Name == nil && req.Email == nil && req.Mobile == nil && req.Designation == nil &&
		req.Gender == nil && req.Course == nil && req.Image == nil {
		return a.erMsg(c, http.StatusBadRequest, "no data provided for update")
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

	// 映射字段
	if !a.employeeMapFields(&req, &employee) {
		return a.er(c, http.StatusBadRequest)
	}

	// 更新员工信息
	if err := a.db.WithContext(rctx).Updates(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusConflict, "employee already exists")
		}
		a.l.Error("failed to update employee", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 清理缓存
	a.rdb.Del(c.Request().Context(), fmt.Sprintf(constants.CacheKeyEmployeeInfo, id))

	return c.JSON(http.StatusOK, employeeInfo(&employee))
}
