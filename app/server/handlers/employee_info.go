package handlers

import (
	"employee-records-backend/app/server/constants"
	"employee-records-backend/app/server/models"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) EmployeeInfoGet(c echo.Context) error {
	id := c.Param("id")
	rctx := c.Request().Context()

	var employee models.Employee

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyEmployeeInfo, id)
	if cacheBytes, err := a.rdb.Get(rctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for employee info", zap.String("id", id), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &employee); err != nil {
		a.l.Error("failed to unmarshal employee info", zap.String("id", id), zap.Error(err))
		// 可能是无效的缓存，清理掉
		a.rdb.Del(rctx, cacheKey)
	} else {
		// 成功拉取到并格式化
		return c.JSON(http.StatusOK, employeeInfo(&employee))
	}

	// 查询数据库
	dbrctx, cancel := a.dbctx(rctx)
	defer cancel()

	if err := a.db.WithContext(dbrctx).First(&employee, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erMsg(c, http.StatusNotFound, "employee not found")
		}
		a.l.Error("failed to get employee", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(&employee); err != nil {
		a.l.Error("failed to marshal employee info", zap.String("id", id), zap.Error(err))
	} else {
		a.rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireEmployeeInfo)
	}

	return c.JSON(http.StatusOK, employeeInfo(&employee))
}
