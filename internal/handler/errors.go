package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/mofer-pos/internal/domain/modifier"
	"github.com/xenking/mofer-pos/internal/domain/order"
	"github.com/xenking/mofer-pos/internal/domain/pricing"
	"github.com/xenking/mofer-pos/internal/oas"
)

// NewError maps handler and security errors to the Error response. Unknown
// errors map to 500 with a generic message and are logged.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	res := mapError(err)
	if res.StatusCode >= http.StatusInternalServerError {
		zctx.From(ctx).Error("Request failed", zap.Error(err))
	}
	return res
}

// handleError writes failures ogen reports outside the handler methods, such
// as undecodable bodies and parameters.
func (h *Handler) handleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, h.NewError(ctx, err))
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, newError(http.StatusNotFound, "NotFound", "route not found"))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeError(w, newError(http.StatusMethodNotAllowed, "MethodNotAllowed", "method not allowed"))
}

func newError(code int, kind, msg string) *oas.ErrorStatusCode {
	return &oas.ErrorStatusCode{
		StatusCode: code,
		Response: oas.Error{
			Code:    code,
			Message: msg,
			Kind:    kind,
		},
	}
}

func writeError(w http.ResponseWriter, res *oas.ErrorStatusCode) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}

func mapError(err error) *oas.ErrorStatusCode {
	var (
		tooLarge  *http.MaxBytesError
		paramsErr *ogenerrors.DecodeParamsError
		paramErr  *ogenerrors.DecodeParamError
		bodyErr   *ogenerrors.DecodeRequestError
		secErr    *ogenerrors.SecurityError
		scopeErr  *scopeError
	)
	switch {
	case errors.As(err, &tooLarge):
		return newError(http.StatusBadRequest, "InvalidRequest", "request body too large")
	case errors.As(err, &paramsErr):
		if !errors.As(err, &paramErr) {
			return newError(http.StatusBadRequest, "InvalidRequest", "invalid parameters")
		}
		res := newError(http.StatusBadRequest, "InvalidRequest", "invalid parameter "+paramErr.Name)
		res.Response.Field = oas.NewOptString(paramErr.Name)
		return res
	case errors.As(err, &bodyErr):
		return newError(http.StatusBadRequest, "InvalidRequest", "malformed request body")
	case errors.As(err, &scopeErr):
		return newError(http.StatusForbidden, "Forbidden", scopeErr.Error())
	case errors.As(err, &secErr):
		return newError(http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	var (
		code     int
		kind     string
		valErr   *order.ValidationError
		pnfErr   *order.ProductNotFoundError
		inactErr *order.InactiveProductError
		ruleErr  *modifier.RuleError
		qtyErr   *pricing.InvalidQuantityError
		priceErr *pricing.InvalidBasePriceError
		stateErr *order.PaymentStateError
	)
	switch {
	case errors.As(err, &valErr):
		code, kind = http.StatusBadRequest, "ValidationError"
	case errors.Is(err, pricing.ErrEmptyOrder):
		code, kind = http.StatusBadRequest, "EmptyOrder"
	case errors.Is(err, pricing.ErrInvalidTaxRate):
		code, kind = http.StatusBadRequest, "InvalidTaxRate"
	case errors.Is(err, order.ErrUnknownTerminalStatus):
		code, kind = http.StatusBadRequest, "UnknownTerminalStatus"
	case errors.Is(err, order.ErrInvalidLast4):
		code, kind = http.StatusBadRequest, "InvalidLast4"

	case errors.Is(err, order.ErrOrganizationNotFound):
		code, kind = http.StatusUnprocessableEntity, "OrganizationNotFound"
	case errors.Is(err, order.ErrLocationNotFound):
		code, kind = http.StatusUnprocessableEntity, "LocationNotFound"
	case errors.As(err, &pnfErr):
		code, kind = http.StatusUnprocessableEntity, "ProductNotFound"
	case errors.As(err, &inactErr):
		code, kind = http.StatusUnprocessableEntity, "InactiveProduct"
	case errors.As(err, &ruleErr):
		code, kind = http.StatusUnprocessableEntity, string(ruleErr.Kind)
	case errors.As(err, &qtyErr):
		code, kind = http.StatusUnprocessableEntity, "InvalidQuantity"
	case errors.As(err, &priceErr):
		code, kind = http.StatusUnprocessableEntity, "InvalidBasePrice"

	case errors.Is(err, order.ErrNotFound):
		code, kind = http.StatusNotFound, "OrderNotFound"
	case errors.Is(err, order.ErrPaymentNotFound):
		code, kind = http.StatusNotFound, "PaymentNotFound"
	case errors.As(err, &stateErr):
		code, kind = http.StatusConflict, "PaymentStateConflict"

	default:
		return newError(http.StatusInternalServerError, "Internal", "internal server error")
	}

	res := newError(code, kind, err.Error())
	if valErr != nil {
		res.Response.Field = oas.NewOptString(valErr.Field)
	}
	if ruleErr != nil {
		if ruleErr.GroupID != uuid.Nil {
			res.Response.GroupId = oas.NewOptUUID(ruleErr.GroupID)
		}
		if ruleErr.OptionID != uuid.Nil {
			res.Response.OptionId = oas.NewOptUUID(ruleErr.OptionID)
		}
	}
	var lineErr *order.LineError
	if errors.As(err, &lineErr) {
		res.Response.Line = oas.NewOptInt(lineErr.Index)
	}
	return res
}
