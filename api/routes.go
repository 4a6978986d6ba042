package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/bank"
	"github.com/carson-networks/atm-server/internal/cash"
	"github.com/carson-networks/atm-server/internal/handlers/v1/session"
	"github.com/carson-networks/atm-server/internal/handlers/v1/status"
	"github.com/carson-networks/atm-server/internal/logging"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	Session   *atm.Session
	Directory *bank.Directory
	Inventory *cash.Inventory
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Session, r.Inventory)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("ATM Server", "1.0.0"))
	session.NewInsertCardHandler(r.Session, r.Directory).Register(humaAPI)
	session.NewEnterPINHandler(r.Session).Register(humaAPI)
	session.NewSelectTransactionHandler(r.Session).Register(humaAPI)
	session.NewExecuteTransactionHandler(r.Session).Register(humaAPI)
	session.NewCancelHandler(r.Session).Register(humaAPI)
	session.NewEjectCardHandler(r.Session).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
