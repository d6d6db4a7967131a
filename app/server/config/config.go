package config

import "time"

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
	}
	Security struct {
		SignatureSecretKey string        // 签名密钥，用于签发访问令牌（JWT），更新会导致旧有会话失效
		TokenTTL           time.Duration // 访问令牌有效期
	}
}
