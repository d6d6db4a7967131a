package models

import "gorm.io/gorm"

// 员工性别与课程闭合枚举
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

var Courses = []string{"MCA", "BCA", "BSC"}

type Employee struct {
	gorm.Model

	EmployeeID  string `gorm:"column:employee_id;uniqueIndex"` // 工号，全局唯一，缺省时自动生成
	Name        string `gorm:"column:name"`                    // 姓名
	Email       string `gorm:"column:email;uniqueIndex"`       // 邮箱，统一为小写，全局唯一
	Mobile      string `gorm:"column:mobile;uniqueIndex"`      // 手机号，全局唯一
	Designation string `gorm:"column:designation"`             // 职位
	Gender      string `gorm:"column:gender"`                  // M / F
	Course      string `gorm:"column:course"`                  // MCA / BCA / BSC
	Image       string `gorm:"column:image"`                   // 头像 URL ，可选
	IsActive    bool   `gorm:"column:is_active;default:true"`  // 是否在职
}
