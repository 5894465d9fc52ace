package panel

import (
	"net/url"
	"strconv"

	"github.com/TemirB/smm-orders/internal/domain"
)

// Credential is the endpoint and API key of one panel.
type Credential struct {
	URL string
	Key string
}

// Credentials maps every panel to its credential. A panel without a key is
// unusable and must never be called.
type Credentials map[domain.Panel]Credential

func (c Credentials) Lookup(p domain.Panel) (Credential, bool) {
	cred, ok := c[p]
	if !ok || cred.Key == "" || cred.URL == "" {
		return Credential{}, false
	}
	return cred, true
}

// Usable reports panel availability for display.
func (c Credentials) Usable(p domain.Panel) bool {
	_, ok := c.Lookup(p)
	return ok
}

// Payload builds the form for an "add" order. Exactly one of comments or
// quantity is set, chosen by the spec's mode.
func Payload(cred Credential, spec domain.ServiceOrderSpec, link string, batch domain.CommentBatch) url.Values {
	form := url.Values{}
	form.Set("key", cred.Key)
	form.Set("action", "add")
	form.Set("service", strconv.FormatInt(spec.ServiceID, 10))
	form.Set("link", link)

	switch spec.Mode {
	case domain.CommentList:
		form.Set("comments", batch.Payload())
	default:
		form.Set("quantity", strconv.Itoa(spec.Quantity))
	}
	return form
}

// Classify turns a decoded panel response into a Result. A response is a
// success only if it is an object carrying an "order" field.
func Classify(raw any) domain.Result {
	if m, ok := raw.(map[string]any); ok {
		if id, ok := m["order"]; ok {
			return domain.Success{OrderID: id}
		}
	}
	return domain.Failure{Detail: raw}
}

// ErrorResponse wraps a local failure in the same shape panels use for errors.
func ErrorResponse(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}
