package rest

import (
	"context"
	"net/http"
)

type contextKey string

const userIDContextKey = contextKey("userID")

func contextSetUserID(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), userIDContextKey, userID)
	return r.WithContext(ctx)
}

// contextGetUserID returns the acting user; ok is false for anonymous
// requests when authentication is required.
func contextGetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(userIDContextKey).(int64)
	return userID, ok
}
