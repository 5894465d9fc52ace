package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/TemirB/smm-orders/internal/domain"
)

const (
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

// Step is delivered once per completed order, in submission order.
type Step struct {
	Index   int
	Total   int
	Outcome domain.OrderOutcome
}

// Fraction is the share of the batch finished after this step.
func (s Step) Fraction() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Index+1) / float64(s.Total)
}

func (s Step) Percent() int { return int(s.Fraction()*100 + 0.5) }

// Row is one line of the final report.
type Row struct {
	Service  string `json:"service"`
	Provider string `json:"provider"`
	Status   string `json:"status"`
	Success  bool   `json:"success"`
	Detail   string `json:"order_id_or_error"`
}

func NewRow(o domain.OrderOutcome) Row {
	r := Row{
		Service:  o.Spec.DisplayName,
		Provider: o.Spec.Panel.Label(),
		Status:   StatusFailed,
		Success:  o.Succeeded(),
		Detail:   FormatValue(o.OrderOrError()),
	}
	if r.Success {
		r.Status = StatusSuccess
	}
	return r
}

func Rows(outcomes []domain.OrderOutcome) []Row {
	rows := make([]Row, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, NewRow(o))
	}
	return rows
}

// Succeeded counts successful rows.
func Succeeded(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Success {
			n++
		}
	}
	return n
}

// FormatValue renders an order id or raw response verbatim for display.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	case map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}

// WriteText prints rows as an aligned plain-text table.
func WriteText(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tPROVIDER\tSTATUS\tORDER ID / ERROR")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Service, r.Provider, r.Status, r.Detail)
	}
	return tw.Flush()
}
