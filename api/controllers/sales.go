package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lucasferreyra/supertrack-backend/api/responses"
	"github.com/lucasferreyra/supertrack-backend/api/validators"
	"github.com/lucasferreyra/supertrack-backend/internal/inventory"
	pkgerrors "github.com/lucasferreyra/supertrack-backend/pkg/errors"
	"github.com/lucasferreyra/supertrack-backend/pkg/logger"
	"github.com/lucasferreyra/supertrack-backend/pkg/metrics"
)

type registerSaleRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// RegisterSale handles POST /supermarkets/{supermarketId}/sales.
func RegisterSale(svc inventory.Service, m *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supermarketID, err := parseIDParam(r, "supermarketId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload registerSaleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithSupermarketID(ctx, supermarketID.String())
			ctx = logg.WithProductID(ctx, productID.String())
		}

		sale, err := svc.RegisterSale(ctx, supermarketID, productID, payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.IncSalesRegistered()
		responses.WriteSuccessStatus(w, http.StatusCreated, sale)
	}
}

// QuantitySold handles GET .../products/{productId}/quantity-sold.
func QuantitySold(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supermarketID, productID, err := parsePairParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.QuantitySold(r.Context(), supermarketID, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ProductRevenue handles GET .../products/{productId}/revenue.
func ProductRevenue(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supermarketID, productID, err := parsePairParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.RevenueForProduct(r.Context(), supermarketID, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// StoreRevenue handles GET /supermarkets/{supermarketId}/revenue.
func StoreRevenue(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supermarketID, err := parseIDParam(r, "supermarketId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.RevenueForStore(r.Context(), supermarketID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func parseIDParam(r *http.Request, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid path parameter").
			WithDetails(map[string]any{"field": key})
	}
	return id, nil
}

func parsePairParams(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	supermarketID, err := parseIDParam(r, "supermarketId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	productID, err := parseIDParam(r, "productId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return supermarketID, productID, nil
}
