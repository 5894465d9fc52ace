package observability

type Metrics interface {
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveOrder(panel string, ok bool, durMs float64)
	ObserveBatch(total, succeeded int, durMs float64)
	IncAuthGranted()
	IncAuthDenied()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveOrder(string, bool, float64)       {}
func (Noop) ObserveBatch(int, int, float64)           {}
func (Noop) IncAuthGranted()                          {}
func (Noop) IncAuthDenied()                           {}
