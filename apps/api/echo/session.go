package echoapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/session"
)

const (
	contextTokenKey   = "sessionToken"
	contextSessionKey = "session"
)

// Claims represents the authorization claims transmitted via a JWT.
// The subject is the UI session id.
type Claims struct {
	jwt.StandardClaims
}

func jwtConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

func GetSessionClaims(conf *core.Config, sess session.Session) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   sess.ID,
			ExpiresAt: now.Add(conf.Server.SessionExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
	}
}

// GenerateToken generates a signed JWT token string representing the session Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	jc := jwtConfig(conf)
	token := jwt.NewWithClaims(jwt.GetSigningMethod(jc.SigningMethod), claims)

	ss, err := token.SignedString(jc.SigningKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextSession(ctx echo.Context) (session.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(session.Session); ok {
		return sess, nil
	}
	return session.Session{}, errUnauthorized
}

// saveContextSession stores sess and makes it the session of the rest of the request.
func saveContextSession(ctx echo.Context, svc *session.Service, sess session.Session) (session.Session, error) {
	sess, err := svc.Save(sess)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "saving session")
	}
	ctx.Set(contextSessionKey, sess)
	return sess, nil
}

// sessionLocks hands out one mutex per UI session id.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// lock blocks until id is free; the returned func releases it.
func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	sl, ok := l.locks[id]
	if !ok {
		sl = new(sessionLock)
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.Lock()
	return func() {
		sl.Unlock()
		l.mu.Lock()
		if sl.refs--; sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// sessionAuth checks the session token then loads its UI session in the context.
// Requests of the same session are served one at a time, from load to save.
func sessionAuth(conf *core.Config, svc *session.Service) echo.MiddlewareFunc {
	jwtAuth := middleware.JWTWithConfig(jwtConfig(conf))
	locks := newSessionLocks()
	load := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			unlock := locks.lock(claims.Subject)
			defer unlock()

			sess, err := svc.Get(claims.Subject)
			if err != nil {
				if errors.Cause(err) == session.ErrNotFound {
					return errSessionExpired
				}
				return errors.Wrap(err, "finding session")
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtAuth(load(next))
	}
}

type sessionApi struct {
	conf *core.Config
	svc  *session.Service
}

func registerSessionAPI(g *echo.Group, auth echo.MiddlewareFunc, conf *core.Config, svc *session.Service) {
	api := sessionApi{conf: conf, svc: svc}

	sg := g.Group("/sessions")
	sg.POST("", api.login)
	sg.DELETE("", api.logout, auth)
}

// Handlers

func (api *sessionApi) login(ctx echo.Context) error {
	sess, err := api.svc.Login()
	if err != nil {
		return errors.Wrap(err, "starting session")
	}
	token, err := GenerateToken(api.conf, GetSessionClaims(api.conf, sess))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusCreated, LoginResponse{Token: token, View: newViewResponse(sess)})
}

func (api *sessionApi) logout(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Logout(sess.ID); err != nil {
		return errors.Wrap(err, "discarding session")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type LoginResponse struct {
	Token string       `json:"token"`
	View  ViewResponse `json:"view"`
}
