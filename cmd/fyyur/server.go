package main

import (
	"net/http"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/config"
	"fyyur/internal/http/middleware"
	"fyyur/internal/httpapi"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func newHTTPHandler(cfg *config.Config, dataStore *store.Store) (http.Handler, error) {
	pages, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	loc := cfg.Display.Location
	venueSvc := venues.New(dataStore, loc)
	artistSvc := artists.New(dataStore, loc)
	showSvc := shows.New(dataStore, loc)

	srv := httpapi.New(venueSvc, artistSvc, showSvc, pages, loc)

	var handler http.Handler = srv.Routes()
	handler = middleware.CORS(cfg.CORS.AllowedOrigin)(handler)
	handler = middleware.Recovery(srv.ServerError)(handler)
	handler = middleware.RequestLogging()(handler)
	return handler, nil
}
