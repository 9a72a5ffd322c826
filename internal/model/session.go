package model

type Action int

const (
	DefaultAction Action = iota
	ExpectingUsername
	ExpectingPassword
	ExpectingQuantity
	ExpectingEmail
)

// Session is the per-chat dialogue state kept in redis: which input the chat
// is currently expected to send and the values gathered along the way.
type Session struct {
	Action      Action
	Username    string
	PendingIsbn string
	Email       string
	LastMsgId   int
}
