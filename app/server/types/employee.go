package types

import "time"

type EmployeeCreateRequest struct {
	EmployeeID  string `json:"f_Id"`
	Name        string `json:"f_Name"`
	Email       string `json:"f_Email"`
	Mobile      string `json:"f_Mobile"`
	Designation string `json:"f_Designation"`
	Gender      string `json:"f_Gender"`
	Course      string `json:"f_Course"`
	Image       string `json:"f_Image,omitempty"`
}

// 更新请求，全部字段可选，至少需要提供一个
type EmployeeUpdateRequest struct {
	Name        *string `json:"f_Name,omitempty"`
	Email       *string `json:"f_Email,omitempty"`
	Mobile      *string `json:"f_Mobile,omitempty"`
	Designation *string `json:"f_Designation,omitempty"`
	Gender      *string `json:"f_Gender,omitempty"`
	Course      *string `json:"f_Course,omitempty"`
	Image       *string `json:"f_Image,omitempty"`
}

type EmployeeStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

type EmployeeInfo struct {
	EmployeeID  string    `json:"f_Id"`
	Name        string    `json:"f_Name"`
	Email       string    `json:"f_Email"`
	Mobile      string    `json:"f_Mobile"`
	Designation string    `json:"f_Designation"`
	Gender      string    `json:"f_Gender"`
	Course      string    `json:"f_Course"`
	Image       string    `json:"f_Image,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"f_Createdate"`
}

type EmployeeListResponse struct {
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	List  []EmployeeInfo `json:"employees"`
}
