package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/pkg/auth"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
	"github.com/healthone/clinic-api/pkg/httputil"
)

const (
	ContextIdentity = "identity"
	ContextClaims   = "claims"

	msgAuthRequired = "Authentication required"
	msgInvalidToken = "Invalid or expired token"
)

type AuthMiddleware struct {
	tokens      *auth.TokenManager
	revocations auth.RevocationStore
	strict      bool
}

// NewAuthMiddleware builds the authenticator. In strict mode a request
// without a usable token is rejected; otherwise it continues anonymously.
func NewAuthMiddleware(tokens *auth.TokenManager, revocations auth.RevocationStore, strict bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:      tokens,
		revocations: revocations,
		strict:      strict,
	}
}

// Authenticate resolves the bearer token into an identity.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.reject(c, msgAuthRequired)
			return
		}

		claims, identity, err := m.resolve(c, token)
		if err != nil {
			log.Ctx(c.Request.Context()).Debug().Err(err).Msg("token rejected")
			m.reject(c, msgInvalidToken)
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// RequireIdentity rejects anonymous requests regardless of mode.
func (m *AuthMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			httputil.RespondWithError(c, apperrors.Unauthorized(msgAuthRequired, nil))
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, message string) {
	if !m.strict {
		c.Next()
		return
	}
	httputil.RespondWithError(c, apperrors.Unauthorized(message, nil))
}

func (m *AuthMiddleware) resolve(c *gin.Context, token string) (*auth.Claims, *model.Identity, error) {
	claims, err := m.tokens.Verify(token)
	if err != nil {
		return nil, nil, err
	}

	if m.revocations != nil {
		revoked, err := m.revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			// An unreachable revocation store cannot vouch for the token.
			return nil, nil, err
		}
		if revoked {
			return nil, nil, auth.ErrInvalidToken
		}
	}

	id, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return nil, nil, auth.ErrInvalidToken
	}
	role := model.Role(claims.Role)
	if !role.Valid() {
		return nil, nil, auth.ErrInvalidToken
	}
	return claims, &model.Identity{ID: id, Role: role}, nil
}

// bearerToken extracts the token from an Authorization header. The scheme
// is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// IdentityFrom returns the caller, or nil for anonymous requests.
func IdentityFrom(c *gin.Context) *model.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	identity, _ := v.(*model.Identity)
	return identity
}

func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
