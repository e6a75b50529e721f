package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/triggerfi/triggerfi/api/handlers"
)

func Serve(
	ctx context.Context,
	addr string,
	orderHandler *handlers.OrderHandler,
	predicateHandler *handlers.PredicateHandler,
) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/orders", orderHandler.HandleCreate).Methods("POST")
	r.HandleFunc("/v1/orders", orderHandler.HandleList).Methods("GET")
	r.HandleFunc("/v1/orders/{orderId}", orderHandler.HandleGet).Methods("GET")
	r.HandleFunc("/v1/orders/{orderId}/cancel", orderHandler.HandleCancel).Methods("POST")
	r.HandleFunc("/v1/orders/{orderId}/fill", orderHandler.HandleFill).Methods("POST")
	r.HandleFunc("/v1/predicates/{predicateId}", predicateHandler.HandleGet).Methods("GET")

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
