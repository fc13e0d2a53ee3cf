package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	deliverycontext "snaptext/internal/delivery/context"
	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	mockUsecase "snaptext/internal/mocks/usecase"
	"snaptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHistoryHandler_Submit_Success(t *testing.T) {
	account := newTestAccount()
	record := &entity.HistoryRecord{
		ID:         uuid.New(),
		AccountID:  account.ID,
		PayloadRef: "captures/abc.jpg",
		ResultText: "recognized text",
		CreatedAt:  time.Now(),
	}

	historyUC := mockUsecase.NewMockHistoryUsecase(t)
	historyUC.EXPECT().
		Submit(mock.Anything, &usecase.SubmitHistoryInput{
			AccountID:  account.ID,
			PayloadRef: "captures/abc.jpg",
			ResultText: "recognized text",
		}).
		Return(record, nil)

	h := NewHistoryHandler(historyUC, slog.Default())

	c, rec := newJSONContext(t, http.MethodPost, "/history", `{"payloadRef":"captures/abc.jpg","resultText":"recognized text"}`)
	deliverycontext.SetAccount(c, account)

	err := h.Submit(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), record.ID.String())
}

func TestHistoryHandler_Submit_MissingFields(t *testing.T) {
	historyUC := mockUsecase.NewMockHistoryUsecase(t)
	h := NewHistoryHandler(historyUC, slog.Default())

	c, _ := newJSONContext(t, http.MethodPost, "/history", `{"payloadRef":"captures/abc.jpg"}`)
	deliverycontext.SetAccount(c, newTestAccount())

	err := h.Submit(c)
	assert.Error(t, err)
}

func TestHistoryHandler_List_ScopedToAccount(t *testing.T) {
	account := newTestAccount()
	records := []*entity.HistoryRecord{
		{ID: uuid.New(), AccountID: account.ID, PayloadRef: "captures/1.jpg", ResultText: "one"},
		{ID: uuid.New(), AccountID: account.ID, PayloadRef: "captures/2.jpg", ResultText: "two"},
	}

	historyUC := mockUsecase.NewMockHistoryUsecase(t)
	historyUC.EXPECT().
		ListOwn(mock.Anything, account.ID).
		Return(records, nil)

	h := NewHistoryHandler(historyUC, slog.Default())

	c, rec := newJSONContext(t, http.MethodGet, "/history", "")
	deliverycontext.SetAccount(c, account)

	err := h.List(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), records[0].ID.String())
	assert.Contains(t, rec.Body.String(), records[1].ID.String())
}

func TestHistoryHandler_Delete_InvalidID(t *testing.T) {
	historyUC := mockUsecase.NewMockHistoryUsecase(t)
	h := NewHistoryHandler(historyUC, slog.Default())

	c, rec := newJSONContext(t, http.MethodDelete, "/history/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	deliverycontext.SetAccount(c, newTestAccount())

	err := h.Delete(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryHandler_Delete_NotFound(t *testing.T) {
	account := newTestAccount()
	recordID := uuid.New()

	historyUC := mockUsecase.NewMockHistoryUsecase(t)
	historyUC.EXPECT().
		DeleteOwn(mock.Anything, account.ID, recordID).
		Return(domainerrors.ErrHistoryRecordNotFound)

	h := NewHistoryHandler(historyUC, slog.Default())

	c, _ := newJSONContext(t, http.MethodDelete, "/history/"+recordID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(recordID.String())
	deliverycontext.SetAccount(c, account)

	err := h.Delete(c)
	assert.ErrorIs(t, err, domainerrors.ErrHistoryRecordNotFound)
}

func TestHistoryHandler_Delete_Success(t *testing.T) {
	account := newTestAccount()
	recordID := uuid.New()

	historyUC := mockUsecase.NewMockHistoryUsecase(t)
	historyUC.EXPECT().
		DeleteOwn(mock.Anything, account.ID, recordID).
		Return(nil)

	h := NewHistoryHandler(historyUC, slog.Default())

	c, rec := newJSONContext(t, http.MethodDelete, "/history/"+recordID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(recordID.String())
	deliverycontext.SetAccount(c, account)

	err := h.Delete(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
