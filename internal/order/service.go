package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"garment-orders/internal/logger"
	"garment-orders/internal/models"
	"garment-orders/internal/order/query"
)

var ErrNotPaid = errors.New("order is not paid yet")

type StoreLayer interface {
	ListOrders(ctx context.Context, filter string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, request models.OrderRequest) (*models.Order, error)
	PatchOrder(ctx context.Context, id string, fields map[string]any) (*models.Order, error)
}

type ListCache interface {
	Get(ctx context.Context) ([]models.Order, bool)
	Set(ctx context.Context, orders []models.Order)
	Invalidate(ctx context.Context)
}

type KafkaPublisher interface {
	PublishOrderCreated(order models.Order) error
	PublishOrderPaid(order models.Order) error
	PublishOrderTaken(order models.Order) error
	PublishNotesUpdated(order models.Order) error
}

type CatalogLayer interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
}

// OrderService validates and prices submissions, reads the collection through
// the cache, and applies the three narrow mutations (paid, taken, notes).
type OrderService struct {
	Store      StoreLayer
	Cache      ListCache
	Kafka      KafkaPublisher
	Catalog    CatalogLayer
	Logger     *logger.Logger
	Generation int
}

func NewOrderService(store StoreLayer, cache ListCache, kafka KafkaPublisher, catalog CatalogLayer, log *logger.Logger, generation int) *OrderService {
	return &OrderService{
		Store:      store,
		Cache:      cache,
		Kafka:      kafka,
		Catalog:    catalog,
		Logger:     log,
		Generation: generation,
	}
}

// ListQuery carries the user-supplied predicates of a list view.
type ListQuery struct {
	Search    string
	Selection query.Selection
}

// OrderListView is the back-office orders page payload: the visible subset,
// quantity summaries over it, and filter options from the full list.
type OrderListView struct {
	Orders         []models.Order `json:"orders"`
	ServiceSummary map[string]int `json:"serviceSummary"`
	SizeSummary    map[string]int `json:"sizeSummary"`
	Facets         query.Facets   `json:"facets"`
	TotalOrders    int            `json:"totalOrders"`
}

// PaymentListView is the payments page payload.
type PaymentListView struct {
	Orders   []models.Order         `json:"orders"`
	Finances query.FinancialSummary `json:"finances"`
}

// fetchOrders reads the collection, through the cache when warm. A store read
// failure degrades to an empty list: the views stay usable and the condition
// is only visible in the logs, matching the read-error contract.
func (s *OrderService) fetchOrders(ctx context.Context) []models.Order {
	if orders, ok := s.Cache.Get(ctx); ok {
		return orders
	}
	orders, err := s.Store.ListOrders(ctx, "")
	if err != nil {
		s.Logger.Error("STORE", fmt.Sprintf("fetch failed, serving empty list: %v", err))
		return []models.Order{}
	}
	s.Cache.Set(ctx, orders)
	return orders
}

// ListOrders evaluates search and facet filters locally over the fetched
// collection. Facets always come from the full list so the dropdown options
// do not shrink while the user narrows down.
func (s *OrderService) ListOrders(ctx context.Context, q ListQuery) *OrderListView {
	orders := s.fetchOrders(ctx)
	normalized := query.NormalizeAll(orders)

	term := query.NormalizeTerm(q.Search)
	visible := make([]models.Order, 0, len(orders))
	visibleNorm := make([]query.Normalized, 0, len(orders))
	for i, o := range orders {
		if !query.MatchOrder(o, normalized[i], term) {
			continue
		}
		if !query.MatchSelection(o, normalized[i], q.Selection) {
			continue
		}
		visible = append(visible, o)
		visibleNorm = append(visibleNorm, normalized[i])
	}

	return &OrderListView{
		Orders:         visible,
		ServiceSummary: query.SummarizeServices(visibleNorm),
		SizeSummary:    query.SummarizeSizes(visibleNorm),
		Facets:         query.DiscoverFacets(normalized),
		TotalOrders:    len(orders),
	}
}

// ListPayments is the payments-page variant: contact-only search, the
// paid-status facet, and the financial summary over the visible subset.
func (s *OrderService) ListPayments(ctx context.Context, q ListQuery) *PaymentListView {
	orders := s.fetchOrders(ctx)

	term := query.NormalizeTerm(q.Search)
	visible := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !query.MatchContact(o, term) {
			continue
		}
		if !query.MatchSelection(o, query.Normalize(o), q.Selection) {
			continue
		}
		visible = append(visible, o)
	}

	return &PaymentListView{
		Orders:   visible,
		Finances: query.SummarizeFinances(visible, query.NormalizeAll(visible)),
	}
}

// SubmitOrder validates the form payload, reprices it server-side and
// persists it. Client-sent prices and totals are treated as hints only.
func (s *OrderService) SubmitOrder(ctx context.Context, req models.SubmitRequest) (*models.Order, error) {
	if verr := ValidateSubmit(req); verr != nil {
		return nil, verr
	}

	request := models.OrderRequest{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	}

	if len(req.Items) > 0 {
		lines := make([]models.OrderLine, 0, len(req.Items))
		for i, item := range req.Items {
			product, err := s.Catalog.GetProductByID(ctx, item.ProductID)
			if err != nil {
				return nil, &ValidationError{Fields: map[string]string{
					fmt.Sprintf("items.%d.productId", i): "Prodotto non trovato.",
				}}
			}
			lines = append(lines, models.OrderLine{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.UnitPrice,
				Size:        item.Size,
				Service:     item.Service,
				Category:    product.Category,
			})
		}
		request.Items = lines
		request.Total = CartTotal(lines)
	} else {
		request.SweatshirtType = req.SweatshirtType
		request.ServiceType = req.ServiceType
		request.Size = req.Size
		request.Service = req.Service
		request.Price = LegacyPrice(req.SweatshirtType, req.ServiceType, s.Generation)
	}

	created, err := s.Store.CreateOrder(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.Cache.Invalidate(ctx)
	if err := s.Kafka.PublishOrderCreated(*created); err != nil {
		s.Logger.Error("KAFKA", fmt.Sprintf("publish order_created: %v", err))
	}
	s.Logger.LogOrder("CREATE", created.ID, "order submitted")
	return created, nil
}

// MarkPaid sets paid and paid_at on the record, then advances the cached
// list optimistically so the views reflect the payment without a refetch.
func (s *OrderService) MarkPaid(ctx context.Context, id string) (*models.Order, error) {
	now := time.Now().UTC()
	updated, err := s.Store.PatchOrder(ctx, id, map[string]any{
		"paid":    true,
		"paid_at": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark order %s paid: %w", id, err)
	}

	if orders, ok := s.Cache.Get(ctx); ok {
		s.Cache.Set(ctx, ApplyPaid(orders, id, now))
	}
	if err := s.Kafka.PublishOrderPaid(*updated); err != nil {
		s.Logger.Error("KAFKA", fmt.Sprintf("publish order_paid: %v", err))
	}
	s.Logger.LogOrder("PAID", id, "order marked as paid")
	return updated, nil
}

// MarkTaken sets taken and taken_at on a paid record. Pickup before payment
// is refused.
func (s *OrderService) MarkTaken(ctx context.Context, id string) (*models.Order, error) {
	current, err := s.Store.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order %s not found: %w", id, err)
	}
	if !current.Paid {
		return nil, ErrNotPaid
	}

	now := time.Now().UTC()
	updated, err := s.Store.PatchOrder(ctx, id, map[string]any{
		"taken":    true,
		"taken_at": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark order %s taken: %w", id, err)
	}

	if orders, ok := s.Cache.Get(ctx); ok {
		s.Cache.Set(ctx, ApplyTaken(orders, id, now))
	}
	if err := s.Kafka.PublishOrderTaken(*updated); err != nil {
		s.Logger.Error("KAFKA", fmt.Sprintf("publish order_taken: %v", err))
	}
	s.Logger.LogOrder("TAKEN", id, "order handed over")
	return updated, nil
}

// UpdateNotes replaces the free-text notes. The notes live inside the request
// blob, so the whole blob is patched with only that field changed.
func (s *OrderService) UpdateNotes(ctx context.Context, id, notes string) (*models.Order, error) {
	current, err := s.Store.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order %s not found: %w", id, err)
	}

	request := current.Request
	request.Notes = notes
	updated, err := s.Store.PatchOrder(ctx, id, map[string]any{
		"request": request,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update notes on order %s: %w", id, err)
	}

	if orders, ok := s.Cache.Get(ctx); ok {
		s.Cache.Set(ctx, ApplyNotes(orders, id, notes))
	}
	if err := s.Kafka.PublishNotesUpdated(*updated); err != nil {
		s.Logger.Error("KAFKA", fmt.Sprintf("publish order_notes_updated: %v", err))
	}
	return updated, nil
}

// GetOrder fetches a single record straight from the store.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Store.GetOrder(ctx, id)
}

// Products lists the catalog for the item builder.
func (s *OrderService) Products(ctx context.Context) ([]models.Product, error) {
	return s.Catalog.GetProducts(ctx)
}
