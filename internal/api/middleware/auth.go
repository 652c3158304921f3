package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/api/metrics"
	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// PrincipalKey is the echo context key the authenticated principal is stored
// under.
const PrincipalKey = "principal"

// Authenticate extracts the bearer credential, runs it through the verifier
// chain in order (first success wins), resolves the claims to a principal, and
// attaches it to the request context. Any failure short-circuits the pipeline:
// a missing token yields 401, an unverifiable one 403, a resolution failure
// 500. There are no retries; verification failure is terminal per request.
func Authenticate(verifiers []ports.TokenVerifier, resolver ports.PrincipalResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				metrics.AuthAttemptsTotal.WithLabelValues("none", "missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			var claims *domain.Claims
			var verifier string
			for _, v := range verifiers {
				got, err := v.Verify(c.Request().Context(), token)
				if err == nil {
					claims = got
					verifier = v.Name()
					break
				}
				log.Debug().Str("verifier", v.Name()).Err(err).Msg("token verification failed")
			}
			if claims == nil {
				metrics.AuthAttemptsTotal.WithLabelValues("none", "invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
			}

			principal, err := resolver.Resolve(c.Request().Context(), claims)
			if err != nil {
				metrics.AuthAttemptsTotal.WithLabelValues(verifier, "resolution_error").Inc()
				if errors.Is(err, domain.ErrResolution) {
					log.Error().Err(err).Str("email", claims.Email).Msg("principal resolution failed")
					return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
				}
				return err
			}

			metrics.AuthAttemptsTotal.WithLabelValues(verifier, "ok").Inc()
			c.Set(PrincipalKey, principal)

			return next(c)
		}
	}
}

// Principal returns the principal attached by Authenticate, or nil when the
// middleware did not run.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(PrincipalKey).(*domain.Principal)
	return p
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
