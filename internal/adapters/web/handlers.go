package web

import (
	"context"
	"errors"
	"time"

	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/usecases"
	"tweet-tipping/internal/wallet"
	"tweet-tipping/pkg/log"
	"tweet-tipping/templates/components"
	"tweet-tipping/templates/pages"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

const defaultRequestTimeout = 2 * time.Minute

// Handlers contains the HTTP handlers for the web application.
type Handlers struct {
	session  *wallet.Session
	owner    *sessionOwner
	resolver *usecases.ResolveAuthorUseCase
	tip      *usecases.TipUseCase
	claim    *usecases.ClaimUseCase
	preview  *usecases.GetPreviewUseCase
	hosts    []string
	timeout  time.Duration
}

// HandlersConfig wires the handlers. Preview may be nil.
type HandlersConfig struct {
	Session        *wallet.Session
	Resolver       *usecases.ResolveAuthorUseCase
	Tip            *usecases.TipUseCase
	Claim          *usecases.ClaimUseCase
	Preview        *usecases.GetPreviewUseCase
	AllowedHosts   []string
	RequestTimeout time.Duration
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg HandlersConfig) *Handlers {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.AllowedHosts) == 0 {
		cfg.AllowedHosts = domain.DefaultAllowedHosts
	}
	return &Handlers{
		session:  cfg.Session,
		owner:    newSessionOwner(cfg.Session),
		resolver: cfg.Resolver,
		tip:      cfg.Tip,
		claim:    cfg.Claim,
		preview:  cfg.Preview,
		hosts:    cfg.AllowedHosts,
		timeout:  cfg.RequestTimeout,
	}
}

// render is a helper to render templ components.
func render(c *fiber.Ctx, component templ.Component) error {
	c.Set("Content-Type", "text/html")
	return adaptor.HTTPHandler(templ.Handler(component))(c)
}

func (h *Handlers) workflowContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// Home renders the tip and claim page.
func (h *Handlers) Home(c *fiber.Ctx) error {
	state := h.owner.State(clientToken(c))
	return render(c, pages.Home(pages.HomeView{
		Wallet: state,
		Tip: components.TipFormView{
			Loading: h.tip.Loading(),
			Preview: h.preview.Enabled(),
		},
		ClaimLoading: h.claim.Loading(),
	}))
}

// ConnectWallet connects the wallet named in the form, or the first one.
func (h *Handlers) ConnectWallet(c *fiber.Ctx) error {
	state, err := h.connect(c, c.FormValue("wallet"))
	if err != nil {
		log.GlobalErrorCtx(c.UserContext(), "wallet connect failed", "error", err)
		return h.renderWithNotice(c, components.WalletButton(state), &domain.Notice{
			Level:   domain.NoticeError,
			Message: h.friendlyError(err),
		})
	}
	return render(c, components.WalletButton(state))
}

// DisconnectWallet drops the current account.
func (h *Handlers) DisconnectWallet(c *fiber.Ctx) error {
	state, err := h.owner.Disconnect(clientToken(c))
	if err != nil {
		return h.renderWithNotice(c, components.WalletButton(state), &domain.Notice{
			Level:   domain.NoticeError,
			Message: h.friendlyError(err),
		})
	}
	return render(c, components.WalletButton(state))
}

func (h *Handlers) connect(c *fiber.Ctx, name string) (wallet.State, error) {
	return h.owner.Connect(clientToken(c), func() (wallet.State, error) {
		return h.session.Connect(c.UserContext(), name)
	})
}

// TipState re-renders the tip button for the current form values.
func (h *Handlers) TipState(c *fiber.Ctx) error {
	req := usecases.TipRequest{URL: c.Query("url"), Amount: c.Query("amount")}
	enabled := h.tip.CanSubmit(req, h.owner.State(clientToken(c)).Connected())
	return render(c, components.TipButton(enabled, h.tip.Loading()))
}

// Tip runs the tip workflow and renders its notice.
func (h *Handlers) Tip(c *fiber.Ctx) error {
	req := usecases.TipRequest{URL: c.FormValue("url"), Amount: c.FormValue("amount")}

	if err := h.owner.Check(clientToken(c)); err != nil {
		return render(c, components.ErrorMessage(h.friendlyError(err)))
	}

	ctx, cancel := h.workflowContext(c)
	defer cancel()

	res, err := h.tip.Execute(ctx, req)
	if err != nil {
		log.GlobalWarnCtx(ctx, "tip rejected", "url", req.URL, "error", err)
		return render(c, components.ErrorMessage(h.friendlyError(err)))
	}
	return render(c, components.Notice(res.Notice))
}

// Claim runs the claim workflow and renders its notice.
func (h *Handlers) Claim(c *fiber.Ctx) error {
	if err := h.owner.Check(clientToken(c)); err != nil {
		return render(c, components.ErrorMessage(h.friendlyError(err)))
	}

	ctx, cancel := h.workflowContext(c)
	defer cancel()

	res, err := h.claim.Execute(ctx)
	if err != nil {
		log.GlobalWarnCtx(ctx, "claim rejected", "error", err)
		return render(c, components.ErrorMessage(h.friendlyError(err)))
	}
	return render(c, components.Notice(res.Notice))
}

// Preview renders who wrote the tweet at ?url=.
func (h *Handlers) Preview(c *fiber.Ctx) error {
	if !h.preview.Enabled() {
		return c.SendStatus(fiber.StatusNoContent)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	url := c.Query("url")
	preview, err := h.preview.Execute(ctx, url)
	if err != nil {
		log.GlobalErrorCtx(ctx, "preview failed", "url", url, "error", err)
		return render(c, components.ErrorMessage(h.friendlyError(err)))
	}
	return render(c, components.Preview(preview))
}

// TipLimited answers a rate limited tip submission.
func (h *Handlers) TipLimited(c *fiber.Ctx) error {
	return render(c, components.ErrorMessage(h.friendlyError(domain.ErrRateLimited)))
}

// renderWithNotice renders main and appends n to the notice list out of band.
func (h *Handlers) renderWithNotice(c *fiber.Ctx, main templ.Component, n *domain.Notice) error {
	return render(c, templ.Join(main, components.OOBNotice(n)))
}

type connectRequest struct {
	Wallet string `json:"wallet"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (h *Handlers) apiError(c *fiber.Ctx, err error) error {
	return c.Status(apiStatus(err)).JSON(errorResponse{Error: h.friendlyError(err), Detail: err.Error()})
}

// APIWallet returns the wallet session state.
func (h *Handlers) APIWallet(c *fiber.Ctx) error {
	return c.JSON(h.owner.State(clientToken(c)))
}

// APIConnectWallet connects the wallet named in the body, or the first one.
func (h *Handlers) APIConnectWallet(c *fiber.Ctx) error {
	var req connectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body", Detail: err.Error()})
		}
	}
	state, err := h.connect(c, req.Wallet)
	if err != nil {
		log.GlobalErrorCtx(c.UserContext(), "wallet connect failed", "wallet", req.Wallet, "error", err)
		return h.apiError(c, err)
	}
	return c.JSON(state)
}

// APIDisconnectWallet drops the current account.
func (h *Handlers) APIDisconnectWallet(c *fiber.Ctx) error {
	state, err := h.owner.Disconnect(clientToken(c))
	if err != nil {
		return h.apiError(c, err)
	}
	return c.JSON(state)
}

// APIResolve resolves the author id of ?url= without tipping.
func (h *Handlers) APIResolve(c *fiber.Ctx) error {
	ref, err := domain.ParseTweetReference(c.Query("url"), h.hosts)
	if err != nil {
		return h.apiError(c, err)
	}

	ctx, cancel := h.workflowContext(c)
	defer cancel()

	res, err := h.resolver.Execute(ctx, ref)
	if err != nil {
		log.GlobalWarnCtx(ctx, "resolve failed", "tweet_id", ref.TweetID, "error", err)
		return h.apiError(c, err)
	}
	return c.JSON(res)
}

// APITip runs the tip workflow. Workflow outcomes, failures included, are
// returned with 200.
func (h *Handlers) APITip(c *fiber.Ctx) error {
	var req usecases.TipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body", Detail: err.Error()})
	}
	if err := h.owner.Check(clientToken(c)); err != nil {
		return h.apiError(c, err)
	}

	ctx, cancel := h.workflowContext(c)
	defer cancel()

	res, err := h.tip.Execute(ctx, req)
	if err != nil {
		return h.apiError(c, err)
	}
	return c.JSON(res)
}

// APIClaim runs the claim workflow.
func (h *Handlers) APIClaim(c *fiber.Ctx) error {
	if err := h.owner.Check(clientToken(c)); err != nil {
		return h.apiError(c, err)
	}

	ctx, cancel := h.workflowContext(c)
	defer cancel()

	res, err := h.claim.Execute(ctx)
	if err != nil {
		return h.apiError(c, err)
	}
	return c.JSON(res)
}

// APITipLimited answers a rate limited API tip.
func (h *Handlers) APITipLimited(c *fiber.Ctx) error {
	return h.apiError(c, domain.ErrRateLimited)
}

func apiStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnknownWallet):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrWalletNotConnected),
		errors.Is(err, domain.ErrTipInProgress):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrSessionOwned):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrNoIngestionReference):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDataNotReady),
		errors.Is(err, domain.ErrPreviewUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadGateway
	}
}

// friendlyError returns a neutral, non-blaming error message.
func (h *Handlers) friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return "That doesn't look like a tweet URL. Try pasting a link from x.com"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Enter a positive RGAS amount with at most 8 decimals."
	case errors.Is(err, domain.ErrWalletNotConnected):
		return "Connect your wallet first."
	case errors.Is(err, domain.ErrUnknownWallet):
		return "That wallet isn't available."
	case errors.Is(err, domain.ErrTipInProgress):
		return "A tip for this tweet is already on its way."
	case errors.Is(err, domain.ErrSessionOwned):
		return "The wallet is connected in another browser. Disconnect it there first."
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case errors.Is(err, domain.ErrDataNotReady):
		return domain.MsgOracleLoading
	case errors.Is(err, domain.ErrNoIngestionReference):
		return "The Oracle has nothing for this tweet yet."
	case errors.Is(err, domain.ErrPreviewUnavailable):
		return "This tweet couldn't be previewed right now."
	default:
		return "Something went wrong. Please try again in a moment."
	}
}
