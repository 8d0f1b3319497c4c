package model

type UserCreateReq struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=255"`
}

type UserUpdateReq struct {
	Id       int64   `json:"id" form:"id" binding:"required"`
	Username *string `json:"username" binding:"omitempty,max=50"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	IsActive *bool   `json:"is_active"`
}

type UserDetailReq struct {
	Id int64 `json:"id" form:"id" binding:"required"`
}

type UserListReq struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

type UserRes struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type UserListRes struct {
	Users []UserRes `json:"users"`
	Total int64     `json:"total"`
}
