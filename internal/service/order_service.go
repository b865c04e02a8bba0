package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/repository"

	"github.com/rs/zerolog"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Submit validates the checkout form and persists a new order. The stored
// record snapshots the submitted items; later cart mutation does not reach
// it. Repeated submissions are not deduplicated: each successful call
// creates exactly one order.
func (s *orderService) Submit(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.NewValidationError(map[string]string{"form": "Request body is required"})
	}

	if fields := validateForm(req); len(fields) > 0 {
		s.logger.Warn().
			Int("field_errors", len(fields)).
			Msg("order form rejected")
		return nil, model.NewValidationError(fields)
	}

	order := &model.Order{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		Zip:           strings.TrimSpace(req.Zip),
		City:          strings.TrimSpace(req.City),
		Country:       strings.TrimSpace(req.Country),
		PaymentMethod: req.PaymentMethod,
		Items:         append([]model.OrderItem(nil), req.Items...),
		Subtotal:      req.Subtotal,
		Shipping:      req.Shipping,
		VAT:           req.VAT,
		GrandTotal:    req.GrandTotal,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Int("grand_total", order.GrandTotal).
		Str("payment_method", order.PaymentMethod).
		Msg("order created successfully")

	return order, nil
}

// GetByID retrieves a stored order.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// validateForm checks the checkout form fields and returns per-field
// messages for every violation. The e-money number and PIN are accepted
// unchecked even for e-money payments; the reference flow never validated
// them.
func validateForm(req *model.OrderRequest) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Name is required"
	}
	if email := strings.TrimSpace(req.Email); email == "" || !emailRe.MatchString(email) {
		fields["email"] = "Invalid email address"
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(req.Address) == "" {
		fields["address"] = "Address is required"
	}
	if strings.TrimSpace(req.Zip) == "" {
		fields["zip"] = "ZIP code is required"
	}
	if strings.TrimSpace(req.City) == "" {
		fields["city"] = "City is required"
	}
	if strings.TrimSpace(req.Country) == "" {
		fields["country"] = "Country is required"
	}
	if req.PaymentMethod != model.PaymentMethodEMoney && req.PaymentMethod != model.PaymentMethodCash {
		fields["paymentMethod"] = "Payment method must be emoney or cash"
	}

	return fields
}
