// Package identity resolves the redeemer identity for a request. The
// identity is an opaque, low-trust string used as a heuristic anti-abuse
// signal; it is NOT an authenticated principal. The resolver is an interface
// so the signal can later be swapped for a signed client token without
// touching the redemption flow.
package identity

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const anonymous = "anonymous"

type Resolver interface {
	// Resolve prefers an explicit client-supplied identifier and falls back
	// to the caller's network address.
	Resolve(c *gin.Context, explicit string) string
}

type IPResolver struct{}

func NewIPResolver() Resolver {
	return &IPResolver{}
}

func (r *IPResolver) Resolve(c *gin.Context, explicit string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return anonymous
}
