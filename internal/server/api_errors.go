package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/lemono/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/lemono/storefront-api/internal/domains/catalog/ports"
	contactdomain "github.com/lemono/storefront-api/internal/domains/contact/domain"
	contactports "github.com/lemono/storefront-api/internal/domains/contact/ports"
	ordersapp "github.com/lemono/storefront-api/internal/domains/orders/application"
	ordersdomain "github.com/lemono/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
	paymentsports "github.com/lemono/storefront-api/internal/domains/payments/ports"
	usersapp "github.com/lemono/storefront-api/internal/domains/users/application"
	usersports "github.com/lemono/storefront-api/internal/domains/users/ports"
	apierrors "github.com/lemono/storefront-api/internal/shared/errors"
)

// responder maps domain and application errors onto RFC 7807 problems.
var responder = apierrors.NewChainedResponder("",
	mapNotFound,
	mapValidation,
	mapAuth,
	mapConflict,
	mapGateway,
)

func mapNotFound(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ordersports.ErrNotFound):
		return apierrors.NewNotFoundProblem("order", nil), true
	case errors.Is(err, catalogports.ErrNotFound):
		return apierrors.NewNotFoundProblem("product", nil), true
	case errors.Is(err, usersports.ErrNotFound):
		return apierrors.NewNotFoundProblem("user", nil), true
	case errors.Is(err, contactports.ErrMessageNotFound):
		return apierrors.NewNotFoundProblem("message", nil), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapValidation(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ordersapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, usersapp.ErrInvalidInput),
		errors.Is(err, ordersdomain.ErrProductNotFound),
		errors.Is(err, ordersdomain.ErrOutOfStock),
		errors.Is(err, contactdomain.ErrEmptyName),
		errors.Is(err, contactdomain.ErrInvalidEmail),
		errors.Is(err, contactdomain.ErrMessageTooShort):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapAuth(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, usersports.ErrInvalidCredentials),
		errors.Is(err, usersapp.ErrPasswordlessAccount):
		return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapConflict(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, usersports.ErrEmailTaken),
		errors.Is(err, usersports.ErrAlreadyFavorite):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrSignatureMismatch):
		return apierrors.ErrBadRequest.WithDetail("Payment verification failed"), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapGateway(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, paymentsports.ErrGatewayNotConfigured):
		return apierrors.ProblemDetail{
			Type:   apierrors.TypeInternal,
			Title:  "Payment Gateway Not Configured",
			Status: http.StatusServiceUnavailable,
			Detail: err.Error(),
		}, true
	case errors.Is(err, paymentsports.ErrGatewayRequest):
		return apierrors.ProblemDetail{
			Type:   apierrors.TypeInternal,
			Title:  "Payment Gateway Error",
			Status: http.StatusBadGateway,
			Detail: err.Error(),
		}, true
	}
	return apierrors.ProblemDetail{}, false
}

// respondProblem sends a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondError maps a raw error to a ProblemDetail with a fixed status.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusUnauthorized:
		problem = apierrors.ErrUnauthorized.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondServiceError runs an error through the mapper chain.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func badQueryParam(name string) apierrors.ProblemDetail {
	return apierrors.NewValidationProblem(map[string]string{name: "must be a non-negative integer"})
}
