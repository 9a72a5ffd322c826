package utils

import (
	"context"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

type ctxKey string

const requestIDKey ctxKey = "rqID"

// CreateCtxWithRqID builds a request-scoped context for one telegram update.
func CreateCtxWithRqID(_ tele.Context) context.Context {
	return context.WithValue(context.Background(), requestIDKey, uuid.NewString())
}

func GetRequestIDFromCtx(ctx context.Context) string {
	rqID, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}
	return rqID
}
