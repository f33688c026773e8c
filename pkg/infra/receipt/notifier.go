package receipt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/playdeck/tabletally/pkg/config"
	"github.com/playdeck/tabletally/pkg/domain/payment"
	"github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/playdeck/tabletally/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// Notifier posts settlement records to an external receipt endpoint (a
// printer bridge or bookkeeping webhook). Delivery is best effort: a failure
// is logged and counted by the breaker, never surfaced to the settlement
// flow.
type Notifier interface {
	SettlementRecorded(s *session.Session, p *payment.Payment)
}

type notifier struct {
	logger  *logrus.Logger
	cfg     config.ReceiptConfig
	client  *fasthttp.Client
	breaker httpx.CircuitBreaker
}

func NewNotifier(logger *logrus.Logger, cfg config.ReceiptConfig) Notifier {
	return &notifier{
		logger: logger,
		cfg:    cfg,
		client: &fasthttp.Client{
			ReadTimeout:  time.Duration(cfg.TimeoutMs) * time.Millisecond,
			WriteTimeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
		breaker: httpx.NewCircuitBreaker("receipt-webhook", 30*time.Second, 5),
	}
}

type settlementPayload struct {
	SessionID    string  `json:"session_id"`
	TableID      string  `json:"table_id"`
	Capacity     int     `json:"capacity"`
	Hours        float64 `json:"hours"`
	TotalAmount  float64 `json:"total_amount"`
	CashAmount   float64 `json:"cash_amount"`
	CardAmount   float64 `json:"card_amount"`
	OnlineAmount float64 `json:"online_amount"`
	OverrideNote string  `json:"override_note,omitempty"`
	SettledAt    string  `json:"settled_at"`
}

func (n *notifier) SettlementRecorded(s *session.Session, p *payment.Payment) {
	if n.cfg.WebhookURL == "" {
		return
	}

	payload := settlementPayload{
		SessionID:    s.ID.String(),
		TableID:      s.TableID.String(),
		Capacity:     s.Capacity,
		Hours:        s.Hours,
		TotalAmount:  p.TotalAmount,
		CashAmount:   p.CashAmount,
		CardAmount:   p.CardAmount,
		OnlineAmount: p.OnlineAmount,
		OverrideNote: p.OverrideNote,
		SettledAt:    time.Now().UTC().Format(time.RFC3339),
	}

	err := n.breaker.Execute(func() error {
		return n.post(payload)
	})
	if err != nil {
		n.logger.WithError(err).WithField("session_id", payload.SessionID).
			Warn("receipt webhook delivery failed")
	}
}

func (n *notifier) post(payload settlementPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal receipt payload: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(n.cfg.WebhookURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := n.client.Do(req, resp); err != nil {
		return fmt.Errorf("receipt webhook request: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("receipt webhook returned status %d", resp.StatusCode())
	}
	return nil
}
