package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	routeNotes          = "/api/notes"
	routeCreate         = "/api/notes/create"
	routeUpdate         = "/api/notes/update"
	routeUpdatePosition = "/api/notes/update-position"
	routeDelete         = "/api/notes/delete"
	routeLike           = "/api/notes/like"
	routeCheckLikes     = "/api/notes/check-likes"
	routeVersion        = "/api/version"
	routeMetrics        = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Group(func(r chi.Router) {
		r.Use(withGZipBody)
		r.Use(withCompression)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get(routeNotes, h.listNotes)
		r.Post(routeCreate, h.createNote)
		r.Post(routeUpdate, h.updateNote)
		r.Post(routeUpdatePosition, h.updatePosition)
		r.Post(routeDelete, h.deleteNote)
		r.Post(routeLike, h.toggleLike)
		r.Post(routeCheckLikes, h.checkLikes)
		r.Get(routeVersion, h.getServerVersion)
	})

	if h.gatherer != nil {
		router.Method("GET", routeMetrics, promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
