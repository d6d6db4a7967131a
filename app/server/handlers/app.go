package handlers

import (
	"context"
	"employee-records-backend/app/server/constants"
	"employee-records-backend/app/server/jwt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l   *zap.Logger   // 日志
	db  *gorm.DB      // 数据库
	rdb *redis.Client // Redis ，员工信息读缓存
	jwt *jwt.JWT      // JWT ，用于无状态验证

	isProd   bool          // 是否为生产环境，影响 cookie 的 Secure 属性
	tokenTTL time.Duration // 访问令牌有效期
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, isProd bool, tokenTTL time.Duration) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		jwt: j,

		isProd:   isProd,
		tokenTTL: tokenTTL,
	}
}

// dbctx 为单次数据库请求加上超时上限，避免存储故障时请求悬挂
func (a *App) dbctx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, constants.DBRequestTimeout)
}
