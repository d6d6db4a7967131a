package handlers

import (
	"employee-records-backend/app/server/models"
	"employee-records-backend/app/server/types"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func employeeInfo(employee *models.Employee) *types.EmployeeInfo {
	return &types.EmployeeInfo{
		EmployeeID:  employee.EmployeeID,
		Name:        employee.Name,
		Email:       employee.Email,
		Mobile:      employee.Mobile,
		Designation: employee.Designation,
		Gender:      employee.Gender,
		Course:      employee.Course,
		Image:       employee.Image,
		IsActive:    employee.IsActive,
		CreatedAt:   employee.CreatedAt,
	}
}

func (a *App) EmployeeCreate(c echo.Context) error {
	// 绑定请求体
	var req types.EmployeeCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 必填字段检查
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Mobile = strings.TrimSpace(req.Mobile)
	req.Designation = strings.TrimSpace(req.Designation)
	if req.Name == "" || req.Email == "" || req.Mobile == "" || req.Designation == "" || req.Gender == "" || req.Course == "" {
		return a.erMsg(c, http.StatusBadRequest, "all fields are required")
	}
	if !isValidEmail(req.Email) {
		return a.erMsg(c, http.StatusBadRequest, "valid email is required")
	}
	if !isNumeric(req.Mobile) {
		return a.erMsg(c, http.StatusBadRequest, "mobile number must be numeric")
	}
	if !isValidGender(req.Gender) {
		return a.erMsg(c, http.StatusBadRequest, "gender must be M or F")
	}
	if !isValidCourse(req.Course) {
		return a.erMsg(c, http.StatusBadRequest, "course must be one of MCA, BCA, BSC")
	}
	if req.Image != "" && !isValidImageURL(req.Image) {
		return a.erMsg(c, http.StatusBadRequest, "image must be a valid URL")
	}

	// 工号缺省时自动生成
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if req.EmployeeID == "" {
		req.EmployeeID = uuid.NewString()
	}

	// 创建记录。唯一性由数据库唯一索引保证
	employee := models.Employee{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Designation: req.Designation,
		Gender:      req.Gender,
		Course:      req.Course,
		Image:       req.Image,
		IsActive:    true,
	}

	rctx, cancel := a.dbctx(c.Request().Context())
	defer cancel()

	if err := a.db.WithContext(rctx).Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusConflict, "employee already exists")
		}
		a.l.Error("failed to create employee", zap.String("employeeID", employee.EmployeeID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, employeeInfo(&employee))
}
