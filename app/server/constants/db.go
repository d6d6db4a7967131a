package constants

import "time"

// DBRequestTimeout 单次数据库请求的超时上限，超时按内部错误处理
const DBRequestTimeout = 5 * time.Second
