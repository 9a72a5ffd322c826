package model

type ActiveUser struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Usertype string `json:"usertype"`
}

type LoginStatus int

const (
	LoginIdle LoginStatus = iota
	LoginSuccess
	LoginFailure
)

// LoginState is a tagged value: User is meaningful only for LoginSuccess,
// ErrMsg only for LoginFailure.
type LoginState struct {
	Status LoginStatus
	User   ActiveUser
	ErrMsg string
}
