package services

import (
	"context"
	"time"

	"doener-shop/models"
	"doener-shop/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OrderNotifier delivers a submitted order to the restaurant over a side channel.
type OrderNotifier interface {
	Name() string
	NotifyOrder(ctx context.Context, order models.OrderRecord, summary string) error
}

type OrderService struct {
	carts     *CartService
	zones     *ZoneTable
	hours     *OpeningHours
	orders    repositories.OrderRepository
	runner    *BackgroundRunner
	notifiers []OrderNotifier
	whatsApp  string
	now       func() time.Time
}

func NewOrderService(
	carts *CartService,
	zones *ZoneTable,
	hours *OpeningHours,
	orders repositories.OrderRepository,
	runner *BackgroundRunner,
	whatsAppNumber string,
	notifiers ...OrderNotifier,
) *OrderService {
	return &OrderService{
		carts:     carts,
		zones:     zones,
		hours:     hours,
		orders:    orders,
		runner:    runner,
		notifiers: notifiers,
		whatsApp:  whatsAppNumber,
		now:       time.Now,
	}
}

func (s *OrderService) Quote(ctx context.Context, cartID string, orderType models.OrderType, zoneKey string) (models.Quote, error) {
	cart, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return models.Quote{}, err
	}
	return s.zones.Quote(orderType, zoneKey, cart.Subtotal())
}

// Submit validates the checkout, builds the order and its WhatsApp link, and
// hands persistence and notifications to the background runner. The result
// does not depend on whether those tasks succeed.
func (s *OrderService) Submit(ctx context.Context, cartID string, req models.CheckoutRequest, meta models.OrderMetadata) (models.SubmitResult, error) {
	if err := ValidateCheckout(req); err != nil {
		return models.SubmitResult{}, err
	}

	cart, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return models.SubmitResult{}, err
	}
	if cart.IsEmpty() {
		return models.SubmitResult{}, ErrEmptyCart
	}

	quote, err := s.zones.Quote(req.OrderType, req.Zone, cart.Subtotal())
	if err != nil {
		return models.SubmitResult{}, err
	}
	if err := Gate(quote); err != nil {
		return models.SubmitResult{}, err
	}

	now := s.now()
	if req.TimeMode == models.TimeSpecific && !s.hours.IsValidSlot(now, req.SpecificTime) {
		return models.SubmitResult{}, validationErr("specific_time", "%s is not an available time", req.SpecificTime)
	}

	meta.CartID = cartID
	record := BuildOrderRecord(cart.Lines(), req, quote, now, meta)
	record.ID = uuid.NewString()

	message := FormatOrderMessage(record)
	s.dispatch(record, message)

	return models.SubmitResult{
		Order:       record,
		Message:     message,
		WhatsAppURL: WhatsAppURL(s.whatsApp, message),
	}, nil
}

func (s *OrderService) dispatch(record models.OrderRecord, message string) {
	fields := logrus.Fields{"order_id": record.ID, "cart_id": record.Metadata.CartID}

	if s.orders != nil {
		s.runner.Go("persist-order", fields, func(ctx context.Context) error {
			order := record
			return s.orders.Create(ctx, &order)
		})
	}

	for _, n := range s.notifiers {
		notifier := n
		s.runner.Go(notifier.Name()+"-order", fields, func(ctx context.Context) error {
			return notifier.NotifyOrder(ctx, record, message)
		})
	}
}
