package dto

import "time"

// ProfileResponse は GET /users/me のレスポンスです。パスワードハッシュは含みません。
type ProfileResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Avatar    *string   `json:"avatar"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateProfileReq struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"max=32"`
	Location string `json:"location" binding:"max=255"`
}

// UpdateAvatarReq carries a reference to an already uploaded image.
type UpdateAvatarReq struct {
	Avatar string `json:"avatar" binding:"required,max=512"`
}

// UserCountResponse は GET /admin/users/count のレスポンスです。
type UserCountResponse struct {
	TotalUsers int64 `json:"totalUsers"`
}
