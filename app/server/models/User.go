package models

import "gorm.io/gorm"

// 用户角色闭合枚举
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	gorm.Model

	// 基础信息
	Username string  `gorm:"column:username;uniqueIndex"` // 用户名，全局唯一
	Email    string  `gorm:"column:email;uniqueIndex"`    // 邮箱，统一为小写，全局唯一
	Mobile   *string `gorm:"column:mobile;uniqueIndex"`   // 手机号，可选，填写时全局唯一
	Role     string  `gorm:"column:role"`                 // admin 或 member

	// 登录与授权认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存，不对外输出
}
