package http

import "github.com/linguahub/admin-console-backend/internal/admin/service"

type Handler struct {
	adminService *service.AdminService
}

func New(adminService *service.AdminService) *Handler {
	return &Handler{
		adminService: adminService,
	}
}

type createUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetPasswordReq struct {
	Email string `json:"email"`
}
