package http

import (
	"strings"
	"time"

	"taskmint/internal/model"
	"taskmint/internal/user"
	"taskmint/pkg/response"
)

type registerReq struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r registerReq) validate() error {
	if strings.TrimSpace(r.FullName) == "" || strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Username) == "" || r.Password == "" {
		return errFieldsRequired
	}
	return nil
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
		Username: r.Username,
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginReq) validate() error {
	if (strings.TrimSpace(r.Email) == "" && strings.TrimSpace(r.Username) == "") || r.Password == "" {
		return errFieldsRequired
	}
	return nil
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Username: r.Username,
		Password: r.Password,
	}
}

type gmailReq struct {
	GmailToken string `json:"gmailToken"`
}

func (r gmailReq) validate() error {
	if strings.TrimSpace(r.GmailToken) == "" {
		return errGmailTokenRequired
	}
	return nil
}

func (r gmailReq) toInput() user.GmailInput {
	return user.GmailInput{GmailToken: r.GmailToken}
}

// userResp is the public view of a user. Credentials never leave the server.
type userResp struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		UserType:  string(u.UserType),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type registerResp struct {
	response.Resp
	User userResp `json:"user"`
}

type authResp struct {
	response.Resp
	User        userResp `json:"user"`
	AccessToken string   `json:"accessToken"`
}

func (h *handler) newRegisterResp(o user.RegisterOutput) registerResp {
	return registerResp{
		Resp: response.NewOKResp("User registered successfully"),
		User: toUserResp(o.User),
	}
}

func (h *handler) newAuthResp(message string, o user.AuthOutput) authResp {
	return authResp{
		Resp:        response.NewOKResp(message),
		User:        toUserResp(o.User),
		AccessToken: o.AccessToken,
	}
}
