// Package server wires the HTTP surface: routing, middleware, and the
// lifecycle hooks that start and stop the listener.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smartbizsa/backend/internal/advisory/chat"
	"github.com/smartbizsa/backend/internal/advisory/smartsql"
	"github.com/smartbizsa/backend/internal/advisory/speech"
	"github.com/smartbizsa/backend/internal/config"
	invoicedomain "github.com/smartbizsa/backend/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

// NewEngine builds the gin engine with the shared middleware chain. Exposed
// so handler tests can assemble the same stack.
func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendURL}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", requestIDHeader)
	r.Use(cors.New(corsCfg))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	})

	return r
}

func registerGin(cfg config.Config, log *zap.Logger) *gin.Engine {
	return NewEngine(cfg, log)
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	chatSvc     chat.Service
	speechSvc   speech.Service
	smartsqlSvc smartsql.Service
	invoiceSvc  invoicedomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	ChatSvc     chat.Service
	SpeechSvc   speech.Service
	SmartSQLSvc smartsql.Service
	InvoiceSvc  invoicedomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log.Named("http.server"),
		chatSvc:     p.ChatSvc,
		speechSvc:   p.SpeechSvc,
		smartsqlSvc: p.SmartSQLSvc,
		invoiceSvc:  p.InvoiceSvc,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	api.GET("/health", s.handleHealth)

	api.POST("/chat", s.handleChat)
	api.POST("/chat/voice", s.handleChatVoice)
	api.GET("/chat/voices", s.handleChatVoices)
	api.POST("/smartsql", s.handleSmartSQL)

	invoices := api.Group("/invoice")
	invoices.POST("/generate", s.handleGenerateInvoice)
	invoices.GET("/list/:business_id", s.handleListInvoices)
	invoices.GET("/:invoice_id", s.handleGetInvoice)
	invoices.GET("/:invoice_id/pdf", s.handleInvoicePDF)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
