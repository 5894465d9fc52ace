package httpapi

import (
	"errors"
	"net/http"

	"github.com/TemirB/smm-orders/internal/domain"
)

const wrongCodeMsg = "Wrong code."

var errUnauthorized = errors.New("access code required")

// validationErrors are rejected before any order is sent.
var validationErrors = []error{
	domain.ErrEmptyLink,
	domain.ErrNothingSelected,
	domain.ErrNoComments,
	domain.ErrUnknownService,
	domain.ErrUnknownPanel,
}

func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
