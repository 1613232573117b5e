package order_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"garment-orders/internal/logger"
	"garment-orders/internal/models"
	"garment-orders/internal/order"
	"garment-orders/internal/order/query"
	"garment-orders/internal/receipt"
	"garment-orders/internal/utils"
)

type Handler struct {
	OrderService *order.OrderService
	Receipts     *receipt.Generator
	Logger       *logger.Logger
}

func NewHandler(orderService *order.OrderService, receipts *receipt.Generator, log *logger.Logger) *Handler {
	return &Handler{
		OrderService: orderService,
		Receipts:     receipts,
		Logger:       log,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// selectionFromQuery reads the repeated facet params of a list request.
func selectionFromQuery(values url.Values, facets ...query.Facet) query.Selection {
	sel := query.Selection{}
	for _, facet := range facets {
		if picked := values[string(facet)]; len(picked) > 0 {
			sel[facet] = picked
		}
	}
	return sel
}

func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("SubmitOrder: failed to decode request body: %v", err))
		writeJSON(w, http.StatusBadRequest,
			utils.ErrorResponse("Dati dell'ordine non validi.", err.Error()))
		return
	}

	created, err := h.OrderService.SubmitOrder(r.Context(), req)
	if err != nil {
		var verr *order.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest,
				utils.ValidationResponse("Compila i campi mancanti. Impossibile creare l'ordine.", verr.Fields))
			return
		}
		h.Logger.Error("API", fmt.Sprintf("SubmitOrder: %v", err))
		writeJSON(w, http.StatusBadGateway,
			utils.ErrorResponse("Errore del database: impossibile salvare l'ordine.", err.Error()))
		return
	}

	writeJSON(w, http.StatusCreated, utils.SuccessResponse("Ordine creato con successo!", created))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	view := h.OrderService.ListOrders(r.Context(), order.ListQuery{
		Search: values.Get("search"),
		Selection: selectionFromQuery(values,
			query.FacetBrand, query.FacetCategory, query.FacetSize, query.FacetService, query.FacetPaid),
	})
	h.Logger.Debug("API", fmt.Sprintf("ListOrders: %d of %d visible", len(view.Orders), view.TotalOrders))
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	view := h.OrderService.ListPayments(r.Context(), order.ListQuery{
		Search:    values.Get("search"),
		Selection: selectionFromQuery(values, query.FacetPaid),
	})
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	updated, err := h.OrderService.MarkPaid(r.Context(), orderID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("MarkPaid: %v", err))
		writeJSON(w, http.StatusBadGateway,
			utils.ErrorResponse("Impossibile aggiornare il pagamento.", err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, utils.SuccessResponse("Ordine segnato come pagato.", updated))
}

func (h *Handler) MarkTaken(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	updated, err := h.OrderService.MarkTaken(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotPaid) {
			writeJSON(w, http.StatusConflict,
				utils.ErrorResponse("L'ordine non è ancora stato pagato.", err.Error()))
			return
		}
		h.Logger.Error("API", fmt.Sprintf("MarkTaken: %v", err))
		writeJSON(w, http.StatusBadGateway,
			utils.ErrorResponse("Impossibile segnare l'ordine come ritirato.", err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, utils.SuccessResponse("Ordine consegnato.", updated))
}

func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest,
			utils.ErrorResponse("Dati delle note non validi.", err.Error()))
		return
	}

	updated, err := h.OrderService.UpdateNotes(r.Context(), orderID, body.Notes)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateNotes: %v", err))
		writeJSON(w, http.StatusBadGateway,
			utils.ErrorResponse("Impossibile aggiornare le note.", err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, utils.SuccessResponse("Note aggiornate.", updated))
}

func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	orderData, err := h.OrderService.GetOrder(r.Context(), orderID)
	if err != nil {
		writeJSON(w, http.StatusNotFound,
			utils.ErrorResponse("Ordine non trovato.", err.Error()))
		return
	}

	png, err := h.Receipts.PickupQR(*orderData)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetReceipt: %v", err))
		writeJSON(w, http.StatusInternalServerError,
			utils.ErrorResponse("Impossibile generare la ricevuta.", err.Error()))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.OrderService.Products(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListProducts: %v", err))
		writeJSON(w, http.StatusInternalServerError,
			utils.ErrorResponse("Impossibile caricare il catalogo.", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, products)
}
