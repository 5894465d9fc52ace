package observability

import "sync"

// Observation is one recorded event.
type Observation struct {
	Kind   string  `json:"kind"`
	Method string  `json:"method,omitempty"`
	Route  string  `json:"route,omitempty"`
	Panel  string  `json:"panel,omitempty"`
	Status int     `json:"status,omitempty"`
	OK     bool    `json:"ok,omitempty"`
	Total  int     `json:"total,omitempty"`
	Dur    float64 `json:"dur_ms"`
}

// Totals are the counters exposed by /api/stats.
type Totals struct {
	OrdersOK     int `json:"orders_ok"`
	OrdersFailed int `json:"orders_failed"`
	Batches      int `json:"batches"`
	AuthGranted  int `json:"auth_granted"`
	AuthDenied   int `json:"auth_denied"`
}

type Inmem struct {
	mu     sync.Mutex
	last   []*Observation
	max    int
	totals Totals
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *Observation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&Observation{Kind: "http", Method: method, Route: route, Status: status, Dur: durMs})
}

func (m *Inmem) ObserveOrder(panel string, ok bool, durMs float64) {
	m.push(&Observation{Kind: "order", Panel: panel, OK: ok, Dur: durMs})
	m.mu.Lock()
	if ok {
		m.totals.OrdersOK++
	} else {
		m.totals.OrdersFailed++
	}
	m.mu.Unlock()
}

func (m *Inmem) ObserveBatch(total, succeeded int, durMs float64) {
	m.push(&Observation{Kind: "batch", Total: total, OK: total == succeeded, Dur: durMs})
	m.mu.Lock()
	m.totals.Batches++
	m.mu.Unlock()
}

func (m *Inmem) IncAuthGranted() {
	m.mu.Lock()
	m.totals.AuthGranted++
	m.mu.Unlock()
}

func (m *Inmem) IncAuthDenied() {
	m.mu.Lock()
	m.totals.AuthDenied++
	m.mu.Unlock()
}

// Snapshot returns the counters and a copy of the recent observations.
func (m *Inmem) Snapshot() (Totals, []Observation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recent := make([]Observation, len(m.last))
	for i, o := range m.last {
		recent[i] = *o
	}
	return m.totals, recent
}
