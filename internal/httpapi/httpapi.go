package httpapi

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/smm-orders/internal/application/service"
	"github.com/TemirB/smm-orders/internal/auth"
	"github.com/TemirB/smm-orders/internal/domain"
	"github.com/TemirB/smm-orders/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "session_id"

type OrderService interface {
	Plan(req service.Request) (service.Plan, error)
	Dispatch(ctx context.Context, plan service.Plan, progress service.ProgressFunc) []domain.OrderOutcome
	PanelUsable(p domain.Panel) bool
}

type Catalog interface {
	Services() []domain.ServiceOrderSpec
	CommentService(p domain.Panel) (domain.ServiceOrderSpec, bool)
	CommentPanels() []domain.Panel
}

type statsSource interface {
	Snapshot() (observability.Totals, []observability.Observation)
}

// sessionHandlerFunc receives the caller's session explicitly.
type sessionHandlerFunc func(w http.ResponseWriter, r *http.Request, sess *auth.Session)

type Server struct {
	service  OrderService
	catalog  Catalog
	gate     *auth.Gate
	sessions *auth.Store
	router   chi.Router
	tmpl     *template.Template
	logger   *zap.Logger
	metrics  observability.Metrics
}

func New(svc OrderService, catalog Catalog, gate *auth.Gate, sessions *auth.Store, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		service:  svc,
		catalog:  catalog,
		gate:     gate,
		sessions: sessions,
		tmpl:     template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		logger:   logger,
		metrics:  metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		ServerTimingApp(s.metrics, s.logger),
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.withSession(s.index))
	r.Post("/login", s.withSession(s.login))
	r.Post("/orders", s.withSession(s.requirePage(s.submitForm)))

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.withSession(s.requireAPI(s.getCatalog)))
		r.Post("/orders", s.withSession(s.requireAPI(s.submitJSON)))
		r.Get("/stats", s.withSession(s.requireAPI(s.getStats)))
	})

	s.router = r
}

func (s *Server) Handler() http.Handler { return s.router }

// withSession resolves (or starts) the caller's session and applies the
// "secret" query parameter, so a link carrying the code skips the prompt.
func (s *Server) withSession(h sessionHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.session(w, r)
		if code := r.URL.Query().Get("secret"); code != "" {
			s.gate.Authenticate(sess, code)
		}
		h(w, r, sess)
	}
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) *auth.Session {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions.Get(c.Value); ok {
			return sess
		}
	}
	sess := s.sessions.New()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) requirePage(h sessionHandlerFunc) sessionHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
		if !sess.Authenticated() {
			s.render(w, http.StatusUnauthorized, "login", loginView{})
			return
		}
		h(w, r, sess)
	}
}

func (s *Server) requireAPI(h sessionHandlerFunc) sessionHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
		if !sess.Authenticated() {
			writeError(w, http.StatusUnauthorized, errUnauthorized.Error())
			return
		}
		h(w, r, sess)
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("Error while rendering template",
			zap.String("template", name),
			zap.Error(err),
		)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
