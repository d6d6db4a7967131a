package handlers

import (
	"employee-records-backend/app/server/models"
	"employee-records-backend/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 允许排序的字段，映射到数据库列，防止拼接任意列名
var employeeSortColumns = map[string]string{
	"f_Id":          "employee_id",
	"f_Name":        "name",
	"f_Email":       "email",
	"f_Designation": "designation",
	"f_Createdate":  "created_at",
}

func (a *App) EmployeeList(c echo.Context) error {
	showAll, page, limit := a.parsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	// 排序列白名单，默认按姓名正序
	column, ok := employeeSortColumns[c.QueryParam("sortBy")]
	if !ok {
		column = "name"
	}
	order := column + " ASC"
	if c.QueryParam("order") == "desc" {
		order = column + " DESC"
	}

	rctx, cancel := a.dbctx(c.Request().Context())
	defer cancel()

	queryBase := a.db.WithContext(rctx).Model(&models.Employee{})
	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + search + "%"
		queryBase = queryBase.Where(
			"name ILIKE ? OR email ILIKE ? OR employee_id ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var employeesCount int64
	if err := queryBase.Count(&employeesCount).Error; err != nil {
		a.l.Error("failed to count employees", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	queryBase = queryBase.Order(order)
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	var employees []models.Employee
	if err := queryBase.Find(&employees).Error; err != nil {
		a.l.Error("failed to get employee list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resEmployees := []types.EmployeeInfo{}
	for _, employee := range employees {
		resEmployees = append(resEmployees, *employeeInfo(&employee))
	}

	return c.JSON(http.StatusOK, &types.EmployeeListResponse{
		Total: employeesCount,
		Page:  page + 1,
		Limit: limit,
		List:  resEmployees,
	})
}
