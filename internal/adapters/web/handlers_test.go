package web_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweet-tipping/internal/adapters/web"
	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/usecases"
	"tweet-tipping/internal/wallet"
)

const (
	tweetURL = "https://x.com/RoochNetwork/status/1800000000000000"
	address  = "0x1234567890abcdef1234567890abcdef"
)

type fakeSigner struct{}

func (fakeSigner) Address() string { return address }

func (fakeSigner) SignAndExecute(context.Context, domain.Transaction) (domain.ExecutionResult, error) {
	return domain.ExecutionResult{}, nil
}

type fakeWallet struct{}

func (fakeWallet) Name() string { return "bridge" }

func (fakeWallet) Connect(context.Context) (wallet.Signer, error) { return fakeSigner{}, nil }

type fakeOracle struct{}

func (fakeOracle) RequestIngestion(context.Context, string) (string, error) { return "0xobj", nil }

// fakeChain answers state reads with author and every submission with status.
type fakeChain struct {
	author string
	status string
	calls  []domain.FunctionCall
}

func (c *fakeChain) AuthorID(context.Context, string) (string, error) { return c.author, nil }

func (c *fakeChain) Submit(_ context.Context, _ wallet.Signer, call domain.FunctionCall) (domain.ExecutionResult, error) {
	c.calls = append(c.calls, call)
	var res domain.ExecutionResult
	err := json.Unmarshal([]byte(`{"execution_info":{"tx_hash":"0xhash","status":`+c.status+`}}`), &res)
	return res, err
}

type testApp struct {
	app     *fiber.App
	session *wallet.Session
	chain   *fakeChain
	client  string
}

func newTestApp(t *testing.T, tipLimit int) *testApp {
	t.Helper()
	session := wallet.NewSession(fakeWallet{})
	chain := &fakeChain{author: "44196397", status: `{"type":"executed"}`}
	resolver := usecases.NewResolveAuthorUseCase(fakeOracle{}, chain, nil, usecases.ResolverConfig{
		MaxRetries: 1,
		Delay:      time.Millisecond,
	})
	tip := usecases.NewTipUseCase(resolver, session, chain, nil, nil, usecases.TipConfig{})
	claim := usecases.NewClaimUseCase(session, chain, nil, usecases.ClaimConfig{})

	handlers := web.NewHandlers(web.HandlersConfig{
		Session:  session,
		Resolver: resolver,
		Tip:      tip,
		Claim:    claim,
		Preview:  usecases.NewGetPreviewUseCase(nil, nil, nil),
	})
	limiter := web.NewRateLimiter(tipLimit, time.Minute)
	t.Cleanup(limiter.Close)

	app := fiber.New()
	web.SetupRoutes(app, handlers, limiter)
	return &testApp{app: app, session: session, chain: chain, client: uuid.NewString()}
}

// do sends req as the app's client unless req already names one.
func (a *testApp) do(t *testing.T, req *http.Request) (int, string) {
	t.Helper()
	if req.Header.Get("X-Client-Token") == "" {
		req.Header.Set("X-Client-Token", a.client)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func form(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (a *testApp) connect(t *testing.T) {
	t.Helper()
	status, body := a.do(t, jsonRequest("/api/wallet/connect", ""))
	require.Equal(t, http.StatusOK, status, body)
}

func asClient(req *http.Request, token string) *http.Request {
	req.Header.Set("X-Client-Token", token)
	return req
}

func TestHome_Disconnected(t *testing.T) {
	a := newTestApp(t, 10)

	status, body := a.do(t, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Connect Wallet")
	assert.Contains(t, body, `hx-post="/claim" hx-target="#notices" hx-swap="beforeend" disabled>Claim`)
	assert.NotContains(t, body, `id="preview"`)
}

func TestConnectAndDisconnect(t *testing.T) {
	a := newTestApp(t, 10)

	status, body := a.do(t, form("/wallet/connect", url.Values{}))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "0x123456...abcdef")

	_, body = a.do(t, httptest.NewRequest(http.MethodGet, "/api/wallet", nil))
	var state wallet.State
	require.NoError(t, json.Unmarshal([]byte(body), &state))
	assert.Equal(t, wallet.StatusConnected, state.Status)
	assert.Equal(t, address, state.Address)

	_, body = a.do(t, form("/wallet/disconnect", url.Values{}))
	assert.Contains(t, body, "Connect Wallet")
	assert.False(t, a.session.State().Connected())
}

func TestConnect_UnknownWallet(t *testing.T) {
	a := newTestApp(t, 10)

	_, body := a.do(t, form("/wallet/connect", url.Values{"wallet": {"nope"}}))

	assert.Contains(t, body, "Connect Wallet")
	assert.Contains(t, body, `hx-swap-oob="beforeend"`)
	assert.Contains(t, body, "That wallet isn&#39;t available.")

	status, _ := a.do(t, jsonRequest("/api/wallet/connect", `{"wallet":"nope"}`))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTipState(t *testing.T) {
	a := newTestApp(t, 10)
	target := "/tip/state?" + url.Values{"url": {tweetURL}, "amount": {"1"}}.Encode()

	_, body := a.do(t, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Contains(t, body, "disabled", "disconnected wallet")

	a.connect(t)
	_, body = a.do(t, httptest.NewRequest(http.MethodGet, target, nil))
	assert.NotContains(t, body, "disabled")

	bad := "/tip/state?" + url.Values{"url": {"https://twitter.com/a/status/1"}, "amount": {"1"}}.Encode()
	_, body = a.do(t, httptest.NewRequest(http.MethodGet, bad, nil))
	assert.Contains(t, body, "disabled", "wrong host")
}

func TestTip_Success(t *testing.T) {
	a := newTestApp(t, 10)
	a.connect(t)

	status, body := a.do(t, form("/tip", url.Values{"url": {tweetURL}, "amount": {"1.5"}}))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Tip sent successfully")
	require.Len(t, a.chain.calls, 1)
	assert.Equal(t, "tip", a.chain.calls[0].Function)
}

func TestTip_InvalidURL(t *testing.T) {
	a := newTestApp(t, 10)
	a.connect(t)

	_, body := a.do(t, form("/tip", url.Values{"url": {"https://example.com/a/status/1"}, "amount": {"1"}}))

	assert.Contains(t, body, "look like a tweet URL")
	assert.Empty(t, a.chain.calls)
}

func TestTip_OracleNotReady(t *testing.T) {
	a := newTestApp(t, 10)
	a.chain.author = ""
	a.connect(t)

	_, body := a.do(t, form("/tip", url.Values{"url": {tweetURL}, "amount": {"1"}}))

	assert.Contains(t, body, "The Oracle is loading tweets.")
	assert.Empty(t, a.chain.calls)
}

func TestClaim_NothingToClaim(t *testing.T) {
	a := newTestApp(t, 10)
	a.chain.status = `{"type":"moveabort","abort_code":"3"}`
	a.connect(t)

	_, body := a.do(t, form("/claim", url.Values{}))

	assert.Contains(t, body, `class="notice notice-error" role="alert">No tips to claim`)
}

func TestAPITip(t *testing.T) {
	a := newTestApp(t, 10)

	status, body := a.do(t, jsonRequest("/api/tip", `{"url":"`+tweetURL+`","amount":"1"}`))
	assert.Equal(t, http.StatusConflict, status, "not connected")
	assert.Contains(t, body, "Connect your wallet first.")

	a.connect(t)
	status, body = a.do(t, jsonRequest("/api/tip", `{"url":"`+tweetURL+`","amount":"1"}`))
	require.Equal(t, http.StatusOK, status, body)

	var res usecases.Result
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, domain.OutcomeSucceeded, res.Outcome)
	assert.Equal(t, "100000000", res.Amount)
	assert.Equal(t, "44196397", res.AuthorID)
}

func TestAPITip_RateLimited(t *testing.T) {
	a := newTestApp(t, 1)
	a.connect(t)

	status, _ := a.do(t, jsonRequest("/api/tip", `{"url":"`+tweetURL+`","amount":"1"}`))
	assert.Equal(t, http.StatusOK, status)

	status, body := a.do(t, jsonRequest("/api/tip", `{"url":"`+tweetURL+`","amount":"1"}`))
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Contains(t, body, "Too many requests")
	assert.Len(t, a.chain.calls, 1)
}

func TestAPIResolve(t *testing.T) {
	a := newTestApp(t, 10)

	status, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/resolve?url="+url.QueryEscape(tweetURL), nil))
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, `"author_id":"44196397"`)

	a.chain.author = ""
	status, _ = a.do(t, httptest.NewRequest(http.MethodGet, "/api/resolve?url="+url.QueryEscape("https://x.com/a/status/42"), nil))
	assert.Equal(t, http.StatusServiceUnavailable, status)

	status, _ = a.do(t, httptest.NewRequest(http.MethodGet, "/api/resolve?url=nope", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPreview_Disabled(t *testing.T) {
	a := newTestApp(t, 10)

	status, _ := a.do(t, httptest.NewRequest(http.MethodGet, "/preview?url="+url.QueryEscape(tweetURL), nil))

	assert.Equal(t, http.StatusNoContent, status)
}

func TestSession_OtherClientCannotUseIt(t *testing.T) {
	a := newTestApp(t, 10)
	a.connect(t)
	other := uuid.NewString()

	status, body := a.do(t, asClient(jsonRequest("/api/tip", `{"url":"`+tweetURL+`","amount":"1"}`), other))
	assert.Equal(t, http.StatusForbidden, status, body)

	status, _ = a.do(t, asClient(jsonRequest("/api/claim", ""), other))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = a.do(t, asClient(jsonRequest("/api/wallet/disconnect", ""), other))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = a.do(t, asClient(jsonRequest("/api/wallet/connect", ""), other))
	assert.Equal(t, http.StatusForbidden, status)

	_, body = a.do(t, asClient(form("/tip", url.Values{"url": {tweetURL}, "amount": {"1"}}), other))
	assert.Contains(t, body, "connected in another browser")

	_, body = a.do(t, asClient(httptest.NewRequest(http.MethodGet, "/api/wallet", nil), other))
	assert.NotContains(t, body, address)

	assert.Empty(t, a.chain.calls)
	assert.True(t, a.session.State().Connected())

	status, _ = a.do(t, jsonRequest("/api/wallet/disconnect", ""))
	assert.Equal(t, http.StatusOK, status)

	status, body = a.do(t, asClient(jsonRequest("/api/wallet/connect", ""), other))
	assert.Equal(t, http.StatusOK, status, "free once the owner disconnects")
	assert.Contains(t, body, address)
}

func TestClientToken_CookieIssued(t *testing.T) {
	a := newTestApp(t, 10)

	resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var token string
	for _, ck := range resp.Cookies() {
		if ck.Name == "tt_client" {
			token = ck.Value
			assert.True(t, ck.HttpOnly)
		}
	}
	_, err = uuid.Parse(token)
	assert.NoError(t, err)
}
