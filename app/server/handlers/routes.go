package handlers

import "github.com/labstack/echo/v4"

// RegisterRoutes 绑定全部路由， authMW 为访问令牌校验中间件
func (a *App) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.GET("/healthz", a.HealthCheck)

	// 用户：注册与登录无需认证，更新与删除需要
	users := e.Group("/api/users")
	users.POST("/register", a.UserRegister)
	users.POST("/login", a.UserLogin)
	users.PUT("/update/:id", a.UserUpdate, authMW)
	users.DELETE("/delete/:id", a.UserDelete, authMW)

	// 员工：全部需要认证
	employees := e.Group("/api/employees", authMW)
	employees.POST("", a.EmployeeCreate)
	employees.GET("", a.EmployeeList)
	employees.GET("/:id", a.EmployeeInfoGet)
	employees.PUT("/:id", a.EmployeeUpdate)
	employees.DELETE("/:id", a.EmployeeDelete)
	employees.PATCH("/:id/status", a.EmployeeStatusUpdate)
}
