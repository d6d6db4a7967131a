package handlers

import (
	"employee-records-backend/app/server/constants"
	"employee-records-backend/app/server/jwt"
	"employee-records-backend/app/server/middlewares"
	"employee-records-backend/app/server/models"
	"employee-records-backend/app/server/types"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	e *echo.Echo
	j *jwt.JWT
}

// 基于内存 sqlite 的完整 handler 环境； redis 指向不可达地址，缓存路径自动退化为查库
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	// 内存库随连接销毁，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Employee{}))

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	a := NewApp(zap.NewNop(), db, rdb, j, false, time.Hour)

	e := echo.New()
	a.RegisterRoutes(e, middlewares.AccessAuth(j))

	return &testEnv{e: e, j: j}
}

func (env *testEnv) request(method string, target string, body string, decorate func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if decorate != nil {
		decorate(req)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	return rec
}

func (env *testEnv) register(t *testing.T, username string, email string) types.UserInfo {
	t.Helper()

	rec := env.request(http.MethodPost, "/api/users/register",
		fmt.Sprintf(`{"userName":%q,"password":"secret123","email":%q,"role":"member"}`, username, email), nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var info types.UserInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))

	return info
}

func (env *testEnv) login(t *testing.T, username string) types.UserLoginResponse {
	t.Helper()

	rec := env.request(http.MethodPost, "/api/users/login",
		fmt.Sprintf(`{"userName":%q,"password":"secret123"}`, username), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res types.UserLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.AccessToken)

	return res
}

func bearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func TestUserRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"userName":"alice"}`},
		{"blank username", `{"userName":"  ","password":"secret123","email":"a@x.com","role":"member"}`},
		{"bad email", `{"userName":"alice","password":"secret123","email":"not-an-email","role":"member"}`},
		{"bad role", `{"userName":"alice","password":"secret123","email":"a@x.com","role":"employee"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.request(http.MethodPost, "/api/users/register", tt.body, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestUserRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	// 注册成功，响应不携带任何密码相关字段
	rec := env.request(http.MethodPost, "/api/users/register",
		`{"userName":"alice","password":"secret123","email":"a@x.com","role":"member"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotContains(t, strings.ToLower(rec.Body.String()), "password")

	var info types.UserInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	require.Equal(t, "alice", info.Username)

	// 重复注册
	rec = env.request(http.MethodPost, "/api/users/register",
		`{"userName":"alice","password":"secret123","email":"a@x.com","role":"member"}`, nil)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	// 未知用户与错误密码的区分
	rec = env.request(http.MethodPost, "/api/users/login", `{"userName":"nobody","password":"secret123"}`, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = env.request(http.MethodPost, "/api/users/login", `{"userName":"alice","password":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// 登录成功： cookie 与响应体都携带令牌
	rec = env.request(http.MethodPost, "/api/users/login", `{"userName":"alice","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res types.UserLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.AccessToken)

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == constants.CookieNameAccessToken {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	require.Equal(t, res.AccessToken, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.False(t, cookie.Secure) // 非生产环境

	// 受保护调用：无令牌 401 ，截断令牌 403 ，过期令牌 403 ，有效令牌放行
	target := fmt.Sprintf("/api/users/update/%d", info.ID)
	body := `{"mobile":"12345"}`

	rec = env.request(http.MethodPut, target, body, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(http.MethodPut, target, body, bearer(res.AccessToken[:len(res.AccessToken)-1]))
	require.Equal(t, http.StatusForbidden, rec.Code)

	expired, err := env.j.SignToken(&jwt.User{ID: info.ID, Expires: time.Now().Add(-time.Minute).Unix()})
	require.NoError(t, err)
	rec = env.request(http.MethodPut, target, body, bearer(expired))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.request(http.MethodPut, target, body, bearer(res.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUserRegisterConcurrentDuplicate(t *testing.T) {
	env := newTestEnv(t)

	const workers = 8
	codes := make(chan int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := env.request(http.MethodPost, "/api/users/register",
				`{"userName":"bob","password":"secret123","email":"b@x.com","role":"member"}`, nil)
			codes <- rec.Code
		}()
	}
	wg.Wait()
	close(codes)

	// 只有一个成功，其余全部冲突
	created, conflicted := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		}
	}
	require.Equal(t, 1, created)
	require.Equal(t, workers-1, conflicted)
}

func TestUserDeleteThenReregister(t *testing.T) {
	env := newTestEnv(t)

	info := env.register(t, "carol", "c@x.com")
	res := env.login(t, "carol")

	rec := env.request(http.MethodDelete, fmt.Sprintf("/api/users/delete/%d", info.ID), "", bearer(res.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// 删除后用户名与邮箱可以重新注册
	env.register(t, "carol", "c@x.com")
}

func TestEmployeeLifecycle(t *testing.T) {
	env := newTestEnv(t)

	env.register(t, "alice", "a@x.com")
	res := env.login(t, "alice")

	createBody := `{"f_Id":"E001","f_Name":"Dave","f_Email":"d@x.com","f_Mobile":"1234567890","f_Designation":"Engineer","f_Gender":"M","f_Course":"MCA"}`

	// 未认证不可创建
	rec := env.request(http.MethodPost, "/api/employees", createBody, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(http.MethodPost, "/api/employees", createBody, bearer(res.AccessToken))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// 工号重复
	rec = env.request(http.MethodPost, "/api/employees", createBody, bearer(res.AccessToken))
	require.Equal(t, http.StatusConflict, rec.Code)

	// 查询
	rec = env.request(http.MethodGet, "/api/employees/E001", "", bearer(res.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)

	var employee types.EmployeeInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &employee))
	require.Equal(t, "Dave", employee.Name)
	require.True(t, employee.IsActive)

	// 状态切换
	rec = env.request(http.MethodPatch, "/api/employees/E001/status", `{"isActive":false}`, bearer(res.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.request(http.MethodPatch, "/api/employees/E001/status", `{}`, bearer(res.AccessToken))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 删除后工号与邮箱可以复用
	rec = env.request(http.MethodDelete, "/api/employees/E001", "", bearer(res.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(http.MethodGet, "/api/employees/E001", "", bearer(res.AccessToken))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.request(http.MethodPost, "/api/employees", createBody, bearer(res.AccessToken))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestEmployeeCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	env.register(t, "alice", "a@x.com")
	res := env.login(t, "alice")

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"f_Name":"Dave"}`},
		{"bad email", `{"f_Name":"Dave","f_Email":"nope","f_Mobile":"123","f_Designation":"Engineer","f_Gender":"M","f_Course":"MCA"}`},
		{"mobile not numeric", `{"f_Name":"Dave","f_Email":"d@x.com","f_Mobile":"12a","f_Designation":"Engineer","f_Gender":"M","f_Course":"MCA"}`},
		{"bad gender", `{"f_Name":"Dave","f_Email":"d@x.com","f_Mobile":"123","f_Designation":"Engineer","f_Gender":"X","f_Course":"MCA"}`},
		{"bad course", `{"f_Name":"Dave","f_Email":"d@x.com","f_Mobile":"123","f_Designation":"Engineer","f_Gender":"M","f_Course":"MBA"}`},
		{"bad image url", `{"f_Name":"Dave","f_Email":"d@x.com","f_Mobile":"123","f_Designation":"Engineer","f_Gender":"M","f_Course":"MCA","f_Image":"ftp://x/y"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.request(http.MethodPost, "/api/employees", tt.body, bearer(res.AccessToken))
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}
