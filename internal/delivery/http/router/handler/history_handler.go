package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "snaptext/internal/delivery/context"
	"snaptext/internal/delivery/http/response"
	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	"snaptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// historyView is the client representation of a capture record.
type historyView struct {
	ID         uuid.UUID `json:"id"`
	PayloadRef string    `json:"payloadRef"`
	ResultText string    `json:"resultText"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newHistoryView(record *entity.HistoryRecord) *historyView {
	return &historyView{
		ID:         record.ID,
		PayloadRef: record.PayloadRef,
		ResultText: record.ResultText,
		CreatedAt:  record.CreatedAt,
	}
}

type submitHistoryRequest struct {
	PayloadRef string `json:"payloadRef" validate:"required"`
	ResultText string `json:"resultText" validate:"required"`
}

// HistoryHandler holds dependencies for capture-history handlers. All
// operations are scoped to the authenticated account.
type HistoryHandler struct {
	uc     usecase.HistoryUsecase
	logger *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler, injected by Fx.
func NewHistoryHandler(uc usecase.HistoryUsecase, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit records one capture result for the authenticated account.
func (h *HistoryHandler) Submit(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var req submitHistoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid history input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.Submit(c.Request().Context(), &usecase.SubmitHistoryInput{
		AccountID:  account.ID,
		PayloadRef: req.PayloadRef,
		ResultText: req.ResultText,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newHistoryView(record), "History record created")
}

// List returns the authenticated account's records, newest first.
func (h *HistoryHandler) List(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	records, err := h.uc.ListOwn(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*historyView, 0, len(records))
	for _, record := range records {
		views = append(views, newHistoryView(record))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Delete removes one of the authenticated account's records. A record
// owned by another account is indistinguishable from a missing one.
func (h *HistoryHandler) Delete(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid history record ID")
	}

	if err := h.uc.DeleteOwn(c.Request().Context(), account.ID, recordID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": recordID.String()}, "History record deleted")
}
