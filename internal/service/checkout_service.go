package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"syncpos/internal/domain"

	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// CheckoutService freezes the live cart into an immutable Order. A checkout
// either commits fully (one append to the order list) or leaves no trace;
// validation failures return before anything is written and the cart stays
// untouched.
type CheckoutService struct {
	cart      CartAccess
	orders    OrderRepository
	publisher SalePublisher
	qr        QRGenerator

	mu       sync.Mutex
	inFlight bool
	seq      int64

	now func() time.Time
}

func NewCheckoutService(cart CartAccess, orders OrderRepository, publisher SalePublisher, qr QRGenerator) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		orders:    orders,
		publisher: publisher,
		qr:        qr,
		seq:       time.Now().Unix() % 1000000,
		now:       time.Now,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, customer domain.Customer, method domain.PaymentMethod, table string) (*domain.Order, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if err := validateCustomer(customer, method); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	s.inFlight = true
	s.seq++
	number := fmt.Sprintf("ORD%06d", s.seq)
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	state := s.cart.State()
	totals := s.cart.Totals()

	order := domain.Order{
		ID:              uuid.NewString(),
		OrderNumber:     number,
		Timestamp:       s.now().UTC(),
		Items:           domain.CloneLines(state.Items),
		Subtotal:        totals.Subtotal,
		DiscountPercent: totals.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		Customer:        customer,
		PaymentMethod:   method,
		Table:           table,
		Status:          domain.OrderStatusCompleted,
	}

	if err := s.orders.AppendOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if s.qr != nil {
		if png, err := s.qr.Generate(order.ID); err == nil {
			if err := s.orders.SaveQRCode(ctx, order.ID, png); err != nil {
				log.Printf("[checkout] receipt QR not stored for %s: %v", order.OrderNumber, err)
			}
		}
	}

	if s.publisher != nil {
		event := domain.SaleEvent{Type: domain.SaleEventType, Order: order, Timestamp: order.Timestamp}
		if err := s.publisher.PublishSale(ctx, event); err != nil {
			log.Printf("[checkout] sale event not published for %s: %v", order.OrderNumber, err)
		}
	}

	if err := s.cart.Clear(ctx); err != nil {
		log.Printf("[checkout] cart clear failed after %s: %v", order.OrderNumber, err)
	}

	return &order, nil
}

func validateCustomer(customer domain.Customer, method domain.PaymentMethod) error {
	fields := map[string]string{}
	if strings.TrimSpace(customer.Name) == "" {
		fields["name"] = "customer name is required"
	}
	if strings.TrimSpace(customer.Phone) == "" {
		fields["phone"] = "phone number is required"
	} else if !phonePattern.MatchString(customer.Phone) {
		fields["phone"] = "enter valid 10-digit phone number"
	}
	if !method.Valid() {
		fields["payment_method"] = "payment method must be cash, card or upi"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *CheckoutService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID || orders[i].OrderNumber == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: order %q", ErrNotFound, orderID)
}

func (s *CheckoutService) ReceiptQR(ctx context.Context, orderID string) ([]byte, error) {
	png, err := s.orders.QRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(png) == 0 && s.qr != nil {
		if regenerated, err := s.qr.Generate(orderID); err == nil {
			if err := s.orders.SaveQRCode(ctx, orderID, regenerated); err == nil {
				return regenerated, nil
			}
			return regenerated, nil
		}
	}
	return png, nil
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
