package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/lucasferreyra/supertrack-backend/pkg/errors"
	"github.com/lucasferreyra/supertrack-backend/pkg/types"
)

// ParseWeekdayQuery reads a required weekday query parameter, accepting
// day names in any case.
func ParseWeekdayQuery(r *http.Request, key string) (types.Weekday, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").
			WithDetails(map[string]any{"field": key})
	}
	day, err := types.ParseWeekday(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid weekday").
			WithDetails(map[string]any{"field": key, "value": raw})
	}
	return day, nil
}

// ParseTimeOfDayQuery reads a required HH:MM query parameter.
func ParseTimeOfDayQuery(r *http.Request, key string) (types.TimeOfDay, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return types.TimeOfDay{}, pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").
			WithDetails(map[string]any{"field": key})
	}
	at, err := types.ParseTimeOfDay(raw)
	if err != nil {
		return types.TimeOfDay{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid time of day").
			WithDetails(map[string]any{"field": key, "value": raw})
	}
	return at, nil
}
