package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// FakePanel imitates the "add" action of a panel API so the tool can be
// tried locally without placing paid orders.
type FakePanel struct {
	key      string
	failRate float64
	logger   *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand

	nextID    atomic.Int64
	accepted  atomic.Int64
	rejected  atomic.Int64
	startedAt time.Time
}

type FakeStats struct {
	Accepted int64  `json:"accepted"`
	Rejected int64  `json:"rejected"`
	Uptime   string `json:"uptime"`
}

func NewFakePanel(key string, failRate float64, seed int64, logger *zap.Logger) *FakePanel {
	p := &FakePanel{
		key:       key,
		failRate:  failRate,
		logger:    logger,
		rnd:       rand.New(rand.NewSource(seed)),
		startedAt: time.Now(),
	}
	p.nextID.Store(100000)
	return p
}

func (p *FakePanel) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Post("/api/v2", p.handleOrder)
	r.Get("/stats", p.handleStats)
	return r
}

func (p *FakePanel) handleOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		p.reject(w, "Incorrect request")
		return
	}
	form := r.PostForm

	switch {
	case p.key != "" && form.Get("key") != p.key:
		p.reject(w, "Invalid API key")
		return
	case form.Get("action") != "add":
		p.reject(w, "Incorrect request")
		return
	case form.Get("service") == "":
		p.reject(w, "Incorrect service ID")
		return
	case form.Get("link") == "":
		p.reject(w, "Incorrect link")
		return
	}

	_, hasComments := form["comments"]
	_, hasQuantity := form["quantity"]
	if hasComments == hasQuantity {
		p.reject(w, "Incorrect request")
		return
	}

	if p.shouldFail() {
		p.reject(w, "Not enough funds on balance")
		return
	}

	id := p.nextID.Add(1)
	p.accepted.Add(1)
	p.logger.Info("Fake order accepted",
		zap.Int64("order", id),
		zap.String("service", form.Get("service")),
		zap.String("link", form.Get("link")),
	)
	writeJSON(w, map[string]any{"order": id})
}

func (p *FakePanel) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, FakeStats{
		Accepted: p.accepted.Load(),
		Rejected: p.rejected.Load(),
		Uptime:   time.Since(p.startedAt).Round(time.Second).String(),
	})
}

func (p *FakePanel) shouldFail() bool {
	if p.failRate <= 0 {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Float64() < p.failRate
}

// reject answers like real panels do: HTTP 200 with an "error" field.
func (p *FakePanel) reject(w http.ResponseWriter, msg string) {
	p.rejected.Add(1)
	p.logger.Warn("Fake order rejected", zap.String("error", msg))
	writeJSON(w, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	var (
		addr     string
		key      string
		failRate float64
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "fakepanel",
		Short: "Serve a fake panel API for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if failRate < 0 || failRate > 1 {
				return fmt.Errorf("--fail-rate must be within [0, 1], got %v", failRate)
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()

			panel := NewFakePanel(key, failRate, seed, logger)
			srv := &http.Server{
				Addr:              addr,
				Handler:           panel.Routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			logger.Info("Fake panel listening",
				zap.String("addr", addr),
				zap.Float64("fail_rate", failRate),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&addr, "addr", ":9090", "Listen address")
	f.StringVar(&key, "key", "", "Accepted API key (empty accepts any)")
	f.Float64Var(&failRate, "fail-rate", 0, "Share of orders rejected with a balance error")
	f.Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed for failures")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
