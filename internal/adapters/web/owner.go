package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/wallet"
)

const (
	clientCookie = "tt_client"
	clientHeader = "X-Client-Token"
	clientLocal  = "client_token"
)

// ClientTokenMiddleware gives every client a random token, carried in a
// cookie or the X-Client-Token header.
func ClientTokenMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(clientHeader)
		if token == "" {
			token = c.Cookies(clientCookie)
		}
		if _, err := uuid.Parse(token); err != nil {
			token = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     clientCookie,
				Value:    token,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteStrictMode,
			})
		}
		c.Locals(clientLocal, token)
		return c.Next()
	}
}

func clientToken(c *fiber.Ctx) string {
	token, _ := c.Locals(clientLocal).(string)
	return token
}

// sessionOwner remembers which client connected the wallet session. Only
// that client may use or drop it until it is disconnected.
type sessionOwner struct {
	session *wallet.Session

	mu    sync.Mutex
	token string
}

func newSessionOwner(session *wallet.Session) *sessionOwner {
	return &sessionOwner{session: session}
}

func (o *sessionOwner) checkLocked(token string) error {
	if o.session.Status() == wallet.StatusDisconnected {
		return nil
	}
	if token == "" || token != o.token {
		return domain.ErrSessionOwned
	}
	return nil
}

// Check fails with domain.ErrSessionOwned when another client holds the
// session.
func (o *sessionOwner) Check(token string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.checkLocked(token)
}

// State is the session as token may see it. Other clients see it
// disconnected.
func (o *sessionOwner) State(token string) wallet.State {
	if o.Check(token) != nil {
		return o.hidden()
	}
	return o.session.State()
}

func (o *sessionOwner) hidden() wallet.State {
	return wallet.State{Status: wallet.StatusDisconnected, Wallets: o.session.Wallets()}
}

// Connect connects the session for token.
func (o *sessionOwner) Connect(token string, connect func() (wallet.State, error)) (wallet.State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkLocked(token); err != nil {
		return o.hidden(), err
	}
	state, err := connect()
	if err != nil {
		o.token = ""
		return state, err
	}
	o.token = token
	return state, nil
}

// Disconnect drops the session for token.
func (o *sessionOwner) Disconnect(token string) (wallet.State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkLocked(token); err != nil {
		return o.hidden(), err
	}
	o.token = ""
	return o.session.Disconnect(), nil
}
