package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/handlers"

	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "financing.api.commercehub.io"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info("Starting financing.api.commercehub.io service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting financing.api.commercehub.io service")
}
