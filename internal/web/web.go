// Package web is the JSON HTTP surface: public signup and pick
// listing, the Stripe checkout endpoints and the password-protected
// admin API.
package web

import (
	"bytes"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	authservice "github.com/yardlineiq/picksserver/auth/service"
	"github.com/yardlineiq/picksserver/internal/config"
	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/normalize"
	"github.com/yardlineiq/picksserver/internal/payment"
	"github.com/yardlineiq/picksserver/internal/service"
	"github.com/yardlineiq/picksserver/internal/web/webpath"
)

type Server struct {
	ledger *service.Ledger
	gate   payment.Gate
	auth   *authservice.Service
	app    *fiber.App
	cfg    config.Server
	log    *logrus.Entry
}

func New(
	ledger *service.Ledger,
	gate payment.Gate,
	authService *authservice.Service,
	cfg config.Server,
	log *logrus.Logger,
) *Server {
	server := Server{
		ledger: ledger,
		gate:   gate,
		auth:   authService,
		cfg:    cfg,
		log:    log.WithField("name", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          server.handleError,
		DisableStartupMessage: !cfg.Debug,
	})
	app.Use(recover.New())

	app.Get(webpath.Health, server.handleHealth)
	app.Post(webpath.ApiSignup, server.handleSignup)
	app.Get(webpath.ApiPicks, server.handleListPicks)
	app.Post(webpath.ApiPaymentIntent, server.handleCreateIntent)
	app.Post(webpath.ApiPaymentConfirm, server.handleConfirmPayment)

	app.Post(webpath.ApiAdminSignin, server.handleAdminSignin)
	app.Use(webpath.ApiAdmin, server.requireAdmin)
	app.Get(webpath.ApiAdminPicks, server.handleAdminListPicks)
	app.Post(webpath.ApiAdminPicks, server.handleCreatePick)
	app.Put(webpath.ApiAdminPickByID, server.handleResolvePick)
	app.Get(webpath.ApiAdminStats, server.handleStats)
	app.Get(webpath.ApiAdminSubscribers, server.handleListSubscribers)
	app.Get(webpath.ApiAdminExport, server.handleExportSubscribers)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// requireAdmin guards every admin route except signin, which is
// registered before this middleware.
func (s *Server) requireAdmin(c *fiber.Ctx) error {
	if err := s.auth.VerifyAdmin(bearerToken(c, "admin_token")); err != nil {
		return err
	}
	return c.Next()
}

// bearerToken reads a token from the Authorization header, falling
// back to the named cookie.
func bearerToken(c *fiber.Ctx, cookie string) string {
	const prefix = "Bearer "
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return c.Cookies(cookie)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	stats, err := s.ledger.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":      "OK",
		"timestamp":   time.Now().UTC(),
		"subscribers": stats.TotalSubscribers,
		"picks":       stats.TotalPicks,
	})
}

func (s *Server) handleSignup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	_, already, err := s.ledger.RegisterFreeSignup(c.Context(), req.Email, req.Name)
	if err != nil {
		return err
	}
	resp := signupResponse{Success: true, Message: "You're on the list!"}
	if already {
		resp.AlreadyRegistered = true
		resp.Message = "You're already on the list."
	}
	return c.JSON(resp)
}

func (s *Server) handleListPicks(c *fiber.Ctx) error {
	filter := service.ListPicksFilter{
		Type:  domain.PickType(c.Query("type")),
		Limit: c.QueryInt("limit"),
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown pick type")
	}
	if token := bearerToken(c, "token"); token != "" {
		if email, err := s.auth.SubscriberEmail(token); err == nil {
			sub, err := s.ledger.GetSubscriber(c.Context(), email)
			filter.ActiveSubscriber = err == nil && sub.Active(time.Now())
		}
	}
	picks, err := s.ledger.ListPicks(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(picksResponse{Picks: convertPicks(picks)})
}

func (s *Server) handleCreateIntent(c *fiber.Ctx) error {
	var req createIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	email, err := normalize.Email(req.CustomerInfo.Email)
	if err != nil {
		return err
	}
	amount := int64(math.Round(req.Amount * 100))
	pkg := domain.PackageType(req.PackageType)
	intent, err := s.gate.CreateIntent(c.Context(), amount, pkg, payment.Customer{
		Name:  req.CustomerInfo.Name,
		Email: email,
	})
	if err != nil {
		return err
	}
	err = s.ledger.RecordPayment(c.Context(), domain.Payment{
		IntentID:    intent.ID,
		Email:       email,
		PackageType: pkg,
		Amount:      amount,
		Currency:    "usd",
		Status:      "created",
	})
	if err != nil {
		return err
	}
	return c.JSON(createIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	})
}

func (s *Server) handleConfirmPayment(c *fiber.Ctx) error {
	var req confirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	verification, err := s.gate.Confirm(c.Context(), req.PaymentIntentID)
	if err != nil {
		return err
	}
	pkg := domain.PackageType(req.PackageType)
	sub, err := s.ledger.RecordPaidSubscription(
		c.Context(), req.CustomerInfo.Email, req.CustomerInfo.Name, pkg, req.PaymentIntentID)
	if err != nil {
		return err
	}
	err = s.ledger.RecordPayment(c.Context(), domain.Payment{
		IntentID:    req.PaymentIntentID,
		Email:       sub.Email,
		PackageType: pkg,
		Amount:      verification.Amount,
		Currency:    verification.Currency,
		Status:      verification.Status,
	})
	if err != nil {
		return err
	}

	resp := confirmPaymentResponse{
		Success:         true,
		Message:         "Payment confirmed, subscription active.",
		SubscriptionEnd: sub.SubscriptionEnd,
	}
	if sub.SubscriptionEnd != nil {
		token, err := s.auth.GenerateSubscriberToken(sub.Email, *sub.SubscriptionEnd)
		if err != nil {
			return err
		}
		resp.AccessToken = token
		c.Cookie(&fiber.Cookie{
			Name:     "token",
			Value:    token,
			Path:     "/",
			Domain:   s.cfg.Host,
			Expires:  *sub.SubscriptionEnd,
			HTTPOnly: true,
		})
	}
	return c.JSON(resp)
}

func (s *Server) handleAdminSignin(c *fiber.Ctx) error {
	var req adminSigninRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.auth.SignInAdmin(req.Password); err != nil {
		return err
	}
	cookie, err := s.auth.GenerateAdminCookie(s.cfg.Host)
	if err != nil {
		return err
	}
	c.Cookie(cookie)
	return c.JSON(fiber.Map{"success": true, "token": cookie.Value})
}

func (s *Server) handleAdminListPicks(c *fiber.Ctx) error {
	picks, err := s.ledger.ListPicks(c.Context(), service.ListPicksFilter{
		Type:             domain.PickType(c.Query("type")),
		ActiveSubscriber: true,
		Limit:            c.QueryInt("limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(picksResponse{Picks: convertPicks(picks)})
}

func (s *Server) handleCreatePick(c *fiber.Ctx) error {
	var req createPickRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	pick, err := s.ledger.CreatePick(c.Context(), req.convertToDomainPick())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(convertPick(pick))
}

func (s *Server) handleResolvePick(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return domain.ErrPickNotFound
	}
	var req updatePickRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	pick, err := s.ledger.ResolvePick(c.Context(), id, domain.PickResult(req.Result))
	if err != nil {
		return err
	}
	return c.JSON(convertPick(pick))
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	stats, err := s.ledger.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (s *Server) handleListSubscribers(c *fiber.Ctx) error {
	subs, err := s.ledger.ListSubscribers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"subscribers": convertSubscribers(subs, time.Now())})
}

func (s *Server) handleExportSubscribers(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := s.ledger.ExportSubscribersCSV(c.Context(), &buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="subscribers.csv"`)
	return c.Send(buf.Bytes())
}
