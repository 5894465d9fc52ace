package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/smm-orders/internal/application/service"
	"github.com/TemirB/smm-orders/internal/auth"
	"github.com/TemirB/smm-orders/internal/domain"
	"github.com/TemirB/smm-orders/internal/observability"
	"github.com/TemirB/smm-orders/internal/report"
)

type loginView struct {
	Error string
}

type serviceOption struct {
	Spec    domain.ServiceOrderSpec
	Checked bool
}

type panelOption struct {
	Panel    domain.Panel
	Name     string
	Usable   bool
	Selected bool
}

type formView struct {
	Error         string
	Warnings      []string
	VideoLink     string
	Comments      string
	CommentCount  int
	OrderComments bool
	CommentPanels []panelOption
	Services      []serviceOption
}

type stepView struct {
	Row       report.Row
	ServiceID int64
	Percent   int
}

type reportView struct {
	VideoLink string
	Total     int
	Succeeded int
	Rows      []report.Row
}

type orderRequest struct {
	VideoLink     string   `json:"video_link"`
	Comments      string   `json:"comments"`
	OrderComments bool     `json:"order_comments"`
	CommentPanel  string   `json:"comment_panel"`
	Services      []string `json:"services"`
}

type orderResponse struct {
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Rows      []report.Row `json:"rows"`
}

type catalogPanel struct {
	Panel  domain.Panel `json:"panel"`
	Name   string       `json:"name"`
	Usable bool         `json:"usable"`
}

type catalogResponse struct {
	Panels   []catalogPanel            `json:"panels"`
	Comments []domain.ServiceOrderSpec `json:"comments"`
	Services []domain.ServiceOrderSpec `json:"services"`
}

func (s *Server) index(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
	if !sess.Authenticated() {
		s.render(w, http.StatusOK, "login", loginView{})
		return
	}
	s.render(w, http.StatusOK, "form", s.defaultForm())
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "login", loginView{Error: "bad form"})
		return
	}
	if !s.gate.Authenticate(sess, r.PostFormValue("code")) {
		s.render(w, http.StatusUnauthorized, "login", loginView{Error: wrongCodeMsg})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) submitForm(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "form", s.defaultForm())
		return
	}

	req := service.Request{
		VideoLink:     r.PostFormValue("video_link"),
		RawComments:   r.PostFormValue("comments"),
		OrderComments: r.PostFormValue("order_comments") != "",
		CommentPanel:  domain.Panel(r.PostFormValue("comment_panel")),
		Services:      r.PostForm["service"],
	}

	plan, err := s.service.Plan(req)
	if err != nil {
		s.logger.Info("Order form rejected",
			zap.String("session", sess.ID),
			zap.Error(err),
		)
		view := s.filledForm(req)
		view.Error = err.Error()
		s.render(w, httpStatus(err), "form", view)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}

	s.execute(w, "report_head", reportView{VideoLink: plan.VideoLink, Total: len(plan.Specs)})
	flush()

	// The batch always runs to completion, even if the browser goes away.
	outcomes := s.service.Dispatch(context.WithoutCancel(r.Context()), plan, func(st report.Step) {
		s.execute(w, "report_step", stepView{
			Row:       report.NewRow(st.Outcome),
			ServiceID: st.Outcome.Spec.ServiceID,
			Percent:   st.Percent(),
		})
		flush()
	})

	rows := report.Rows(outcomes)
	s.execute(w, "report_done", reportView{
		VideoLink: plan.VideoLink,
		Total:     len(rows),
		Succeeded: report.Succeeded(rows),
		Rows:      rows,
	})
	flush()
}

func (s *Server) submitJSON(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var in orderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&in); err != nil {
		s.logger.Error(
			"Error while decoding JSON",
			zap.Error(err),
		)
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	plan, err := s.service.Plan(service.Request{
		VideoLink:     in.VideoLink,
		RawComments:   in.Comments,
		OrderComments: in.OrderComments,
		CommentPanel:  domain.Panel(strings.ToLower(strings.TrimSpace(in.CommentPanel))),
		Services:      in.Services,
	})
	if err != nil {
		writeError(w, httpStatus(err), err.Error())
		return
	}

	start := time.Now()
	outcomes := s.service.Dispatch(context.WithoutCancel(r.Context()), plan, nil)
	durMs := observability.SinceMs(start)

	rows := report.Rows(outcomes)
	observability.AppendServerTiming(w, "dispatch", durMs, "")
	observability.SetIfPos(w, "X-Dispatch-Time", durMs)

	writeJSON(w, http.StatusOK, orderResponse{
		Total:     len(rows),
		Succeeded: report.Succeeded(rows),
		Rows:      rows,
	})
}

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
	resp := catalogResponse{Services: s.catalog.Services()}
	for _, p := range domain.Panels {
		resp.Panels = append(resp.Panels, catalogPanel{Panel: p, Name: p.Name(), Usable: s.service.PanelUsable(p)})
	}
	for _, p := range s.catalog.CommentPanels() {
		if spec, ok := s.catalog.CommentService(p); ok {
			resp.Comments = append(resp.Comments, spec)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
	src, ok := s.metrics.(statsSource)
	if !ok {
		writeError(w, http.StatusNotFound, "stats are not collected")
		return
	}
	totals, recent := src.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"totals": totals,
		"recent": recent,
	})
}

func (s *Server) execute(w http.ResponseWriter, name string, data any) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Warn("Error while streaming report",
			zap.String("template", name),
			zap.Error(err),
		)
	}
}

func (s *Server) defaultForm() formView {
	view := formView{OrderComments: true}
	for i, p := range s.catalog.CommentPanels() {
		view.CommentPanels = append(view.CommentPanels, panelOption{
			Panel:    p,
			Name:     p.Name(),
			Usable:   s.service.PanelUsable(p),
			Selected: i == 0,
		})
	}
	for _, spec := range s.catalog.Services() {
		view.Services = append(view.Services, serviceOption{Spec: spec, Checked: true})
	}
	view.Warnings = s.warnings()
	return view
}

// filledForm re-renders the operator's input after a rejected submit.
func (s *Server) filledForm(req service.Request) formView {
	view := s.defaultForm()
	view.VideoLink = req.VideoLink
	view.Comments = req.RawComments
	view.CommentCount = domain.BuildCommentBatch(req.RawComments).Count()
	view.OrderComments = req.OrderComments

	if req.CommentPanel != "" {
		for i := range view.CommentPanels {
			view.CommentPanels[i].Selected = view.CommentPanels[i].Panel == req.CommentPanel
		}
	}
	selected := make(map[string]bool, len(req.Services))
	for _, k := range req.Services {
		selected[k] = true
	}
	for i := range view.Services {
		view.Services[i].Checked = selected[view.Services[i].Spec.Key]
	}
	return view
}

func (s *Server) warnings() []string {
	var out []string
	for _, p := range domain.Panels {
		if !s.service.PanelUsable(p) {
			out = append(out, p.Name()+" has no API key configured. Orders routed to it will fail without being sent.")
		}
	}
	return out
}
