// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package access answers "who is calling and what may they do" from the
// verified token claims that [middleware.Authenticate] attached to the request.
package access

import (
	"context"

	"github.com/taibuivan/authordesk/internal/platform/ctxutil"
	"github.com/taibuivan/authordesk/internal/platform/sec"
)

// Claims resolves the current user from request-scoped [sec.AuthClaims].
// The zero value is ready to use.
type Claims struct{}

// NewClaims returns a claims-backed access context.
func NewClaims() Claims {
	return Claims{}
}

// CurrentUserHasRole reports whether the caller's role meets role.
// Anonymous callers hold no role.
func (Claims) CurrentUserHasRole(ctx context.Context, role sec.UserRole) bool {
	claims := ctxutil.GetAuthUser(ctx)
	if claims == nil {
		return false
	}
	return sec.UserRole(claims.Role).AtLeast(role)
}

// CurrentUserID returns the caller's user id, or false for anonymous callers.
func (Claims) CurrentUserID(ctx context.Context) (string, bool) {
	claims := ctxutil.GetAuthUser(ctx)
	if claims == nil || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
