package inits

import (
	"employee-records-backend/app/server/config"
	"employee-records-backend/app/server/constants"
	"fmt"
	"os"
	"strings"
	"time"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	// 手动配置映射，如果这里有什么自动映射工具就好了， viper 好像处理这种基于环境变量的配置也不是很方便
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":4000" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist || sigsk == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if ttl, exist := os.LookupEnv("TOKEN_TTL"); !exist {
		cfg.Security.TokenTTL = constants.AuthTokenDuration
	} else if parsed, err := time.ParseDuration(ttl); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL value %q: %w", ttl, err)
	} else if parsed <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %q", ttl)
	} else {
		cfg.Security.TokenTTL = parsed
	}

	return cfg, nil
}
