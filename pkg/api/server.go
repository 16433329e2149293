package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/oursky/isoduration/pkg/isoduration"
	"github.com/oursky/isoduration/pkg/utils/channels"
	"github.com/oursky/isoduration/pkg/utils/httputil"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	logger   *zap.Logger
	enabled  bool
	server   *http.Server
	validate *validator.Validate
	metrics  *metrics
	maxBatch int
	recent   *channels.Broadcaster[[]Conversion]
}

func NewServer(logger *zap.Logger, config *Config, registry *prometheus.Registry) (*Server, error) {
	if config.Disabled {
		return &Server{enabled: false, recent: channels.NewBroadcaster[[]Conversion](nil)}, nil
	}

	logger = logger.Named("api")

	validate := validator.New()
	if err := isoduration.RegisterValidation(validate); err != nil {
		return nil, fmt.Errorf("cannot register validation: %w", err)
	}

	r := mux.NewRouter()
	server := &Server{
		logger:  logger,
		enabled: true,
		server: &http.Server{
			Addr:         config.GetAddr(),
			ReadTimeout:  config.GetReadTimeout(),
			WriteTimeout: config.GetWriteTimeout(),
			Handler:      r,
			ErrorLog:     zap.NewStdLog(logger),
		},
		validate: validate,
		metrics:  newMetrics(registry),
		maxBatch: config.GetMaxBatch(),
		recent:   channels.NewBroadcaster[[]Conversion](nil),
	}

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: zap.NewStdLog(logger.Named("prom")),
	}))

	apiR := mux.NewRouter()
	r.PathPrefix("/api/v1/").Handler(httputil.UseKeyAuth(config.AuthKeys, apiR))

	apiR.HandleFunc("/api/v1/parse", server.apiParse).Methods("GET")
	apiR.HandleFunc("/api/v1/format", server.apiFormat).Methods("GET")
	apiR.HandleFunc("/api/v1/convert", server.apiConvert).Methods("POST")

	return server, nil
}

// Recent holds the latest conversions served, newest first.
func (s *Server) Recent() *channels.Broadcaster[[]Conversion] {
	return s.recent
}

func (s *Server) Handler() http.Handler {
	if !s.enabled {
		return http.NotFoundHandler()
	}
	return s.server.Handler
}

func (s *Server) Start(ctx context.Context, g *errgroup.Group) error {
	if !s.enabled {
		return nil
	}

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			s.server.Shutdown(shutdownCtx)
		}()

		s.logger.Info("starting server",
			zap.String("addr", s.server.Addr),
			isoduration.StdField("readTimeout", s.server.ReadTimeout),
			isoduration.StdField("writeTimeout", s.server.WriteTimeout),
		)
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to run server: %w", err)
		}
		return nil
	})
	return nil
}
