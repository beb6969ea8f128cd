package controllers

import (
	"net/http"

	"github.com/lucasferreyra/supertrack-backend/api/responses"
	"github.com/lucasferreyra/supertrack-backend/api/validators"
	"github.com/lucasferreyra/supertrack-backend/internal/chain"
	"github.com/lucasferreyra/supertrack-backend/pkg/logger"
)

// ChainTopProducts handles GET /chain/top-products.
func ChainTopProducts(svc chain.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.TopProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ChainRevenue handles GET /chain/revenue.
func ChainRevenue(svc chain.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.TotalRevenue(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ChainTopStore handles GET /chain/top-store.
func ChainTopStore(svc chain.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.TopRevenueStore(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ChainStoresOpen handles GET /chain/open?weekday=MONDAY&time=10:00.
func ChainStoresOpen(svc chain.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := validators.ParseWeekdayQuery(r, "weekday")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		at, err := validators.ParseTimeOfDayQuery(r, "time")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.StoresOpenAt(r.Context(), day, at)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
