package authtoken

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies bearer tokens issued by the external identity provider.
// Token issuance lives outside this backend; only the shared HS256 secret
// is configured here.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
}

type tokenService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewService(secretKey string) Service {
	return &tokenService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *tokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}
