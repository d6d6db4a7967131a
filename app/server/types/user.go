package types

import "time"

type UserRegisterRequest struct {
	Username string  `json:"userName"`
	Password string  `json:"password"`
	Email    string  `json:"email"`
	Mobile   *string `json:"mobile,omitempty"`
	Role     string  `json:"role"`
}

type UserLoginRequest struct {
	Username string `json:"userName"`
	Password string `json:"password"`
}

// 更新请求，全部字段可选，至少需要提供一个
type UserUpdateRequest struct {
	Username *string `json:"userName,omitempty"`
	Password *string `json:"password,omitempty"`
	Email    *string `json:"email,omitempty"`
	Mobile   *string `json:"mobile,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// 对外的用户身份，不携带任何密码相关字段
type UserInfo struct {
	ID        uint      `json:"id"`
	Username  string    `json:"userName"`
	Email     string    `json:"email"`
	Mobile    *string   `json:"mobile,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserLoginResponse struct {
	User        UserInfo `json:"user"`
	AccessToken string   `json:"accessToken"`
}
