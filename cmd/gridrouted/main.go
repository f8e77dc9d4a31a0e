// Command gridrouted serves the A* router over HTTP (see package server).
//
// The listen port comes from $PORT (default 8080) unless -addr is given.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridroute/server"
)

func listenAddr(flagAddr string) string {
	if flagAddr != "" {
		return flagAddr
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}

	return ":" + port
}

func main() {
	addr := flag.String("addr", "", "listen address, overrides $PORT")
	maxCells := flag.Int("max-cells", server.DefaultMaxCells, "largest accepted grid (rows·cols)")
	maxExpansions := flag.Int("max-expansions", 0, "per-search expansion cap (0 = unlimited)")
	jsonLogs := flag.Bool("json", false, "emit JSON logs")
	flag.Parse()

	logger := log.StandardLogger()
	if *jsonLogs {
		logger.SetFormatter(&log.JSONFormatter{})
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr: listenAddr(*addr),
		Handler: server.New(
			server.WithLogger(logger),
			server.WithRegistry(reg),
			server.WithMaxCells(*maxCells),
			server.WithMaxExpansions(*maxExpansions),
		),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	log.WithField("addr", srv.Addr).Info("gridrouted listening")
	log.Fatalln(srv.ListenAndServe())
}
