package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
)

// Authenticator registers users and issues bearer tokens for them.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*dmn.User, error)
	SignIn(ctx context.Context, username, password string) (*dmn.User, string, error)
}
