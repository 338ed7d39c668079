package response

import "smart-parking/internal/usecase/commands"

type LoginUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

func FromLoginResult(res commands.LoginResult) LoginResponse {
	return LoginResponse{
		Token: res.Token,
		User:  LoginUser{ID: res.UserID, Email: res.Email},
	}
}
