package constants

import "time"

const (
	CacheKeyEmployeeInfo = "ems:employee:info:%s" // %s -> employee id
)

const (
	CacheExpireEmployeeInfo = 1 * time.Hour
)
