// Package models defines client-side data models used by the collabdocs client:
// the response envelope, identity types and the projections of server resources.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a server-assigned identifier. The backend emits some identifiers as
// JSON numbers and others as strings; ID accepts both and always marshals as
// a string.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", string(b), err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as text.
func (id ID) String() string { return string(id) }

// IDFromInt converts a numeric identifier.
func IDFromInt(n int64) ID { return ID(strconv.FormatInt(n, 10)) }

// SuccessCode is the envelope code of a successful call.
const SuccessCode = 200

// Envelope is the uniform {code, message, data} wrapper of every response.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// OK reports whether the envelope carries the success code.
func (e *Envelope) OK() bool { return e.Code == SuccessCode }

// UserProfile is the locally persisted identity of the authenticated user.
type UserProfile struct {
	UserID   ID     `json:"userId"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email,omitempty"`
}

// User is the public representation of an account.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Status   int    `json:"status"`
}

// Profile projects u onto the fields kept by the session.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		UserID:   u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Email:    u.Email,
	}
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	UserID     ID     `json:"userId"`
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	Token      string `json:"token"`
	ExpireTime int64  `json:"expireTime,omitempty"`
}

// Profile projects the login result onto the session profile.
func (r *LoginResult) Profile() *UserProfile {
	return &UserProfile{
		UserID:   r.UserID,
		Username: r.Username,
		Nickname: r.Nickname,
		Avatar:   r.Avatar,
	}
}

// RegisterRequest creates a new account. Nickname defaults to Username on the server.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Nickname string `json:"nickname,omitempty"`
}

// UpdateProfileRequest changes profile fields. Empty fields are left untouched.
type UpdateProfileRequest struct {
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
