package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/analytics", func(ar chi.Router) {
		ar.Get("/report", reportHandler(svc))
		ar.Get("/animals", listAssessmentsHandler(svc))
	})
}

// reportHandler godoc
// @Summary      Production report
// @Description  KPIs de producción y distribuciones del hato para un modo temporal.
// @Tags         analytics
// @Produce      json
// @Param        mode  query     string  false  "daily | monthly | yearly"
// @Success      200   {object}  ReportResponse
// @Failure      400   {string}  string
// @Router       /analytics/report [get]
func reportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := svc.DefaultMode()
		if raw := r.URL.Query().Get("mode"); raw != "" {
			m, err := ParseMode(raw)
			if err != nil {
				http.Error(w, "mode must be daily, monthly or yearly", http.StatusBadRequest)
				return
			}
			mode = m
		}

		rep, err := svc.Report(r.Context(), mode)
		if err != nil {
			// solo ocurre si el cliente canceló
			http.Error(w, "request cancelled", http.StatusServiceUnavailable)
			return
		}

		writeJSON(w, http.StatusOK, ToReportResponse(rep))
	}
}

// listAssessmentsHandler godoc
// @Summary      Effective weights
// @Description  Peso efectivo, edad y si el peso es estimado, por animal.
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   AnimalResponse
// @Failure      502  {string}  string
// @Router       /analytics/animals [get]
func listAssessmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Assessments(r.Context())
		if err != nil {
			if r.Context().Err() != nil {
				http.Error(w, "request cancelled", http.StatusServiceUnavailable)
				return
			}
			http.Error(w, "herd data unavailable", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, ToAnimalResponses(items))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
