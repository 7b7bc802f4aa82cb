package web

import (
	"net/http"
	"strconv"

	"github.com/Alexanderh2004/survivor-automation/controller"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func roomsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := ctrl.ListRooms(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		weeks, err := ctrl.Weeks(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"rooms": rooms,
			"weeks": weeks,
		}
		render.HTML(w, http.StatusOK, "rooms", data)
	}
}

func weekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		matches, err := ctrl.MatchesByWeek(r.Context(), week)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"week":    week,
			"matches": matches,
		}
		render.HTML(w, http.StatusOK, "week", data)
	}
}
