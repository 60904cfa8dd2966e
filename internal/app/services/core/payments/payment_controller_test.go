package payments

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentUsecase struct {
	callbacks []*requests.PaymentCallback
}

func (f *fakePaymentUsecase) CreateOrder(ctx context.Context, session *models.Session, request *requests.CreatePaymentOrder) (*responses.PaymentOrder, error) {
	return &responses.PaymentOrder{OrderID: "order-1"}, nil
}

func (f *fakePaymentUsecase) Verify(ctx context.Context, session *models.Session, request *requests.VerifyPayment) (*responses.PaymentStatus, error) {
	return &responses.PaymentStatus{OrderID: request.OrderID, Paid: true}, nil
}

func (f *fakePaymentUsecase) HandleCallback(ctx context.Context, request *requests.PaymentCallback) error {
	f.callbacks = append(f.callbacks, request)
	return nil
}

func newCallbackController(usecase *fakePaymentUsecase) *PaymentController {
	internalConfig := &config.InternalConfig{}
	internalConfig.PaymentGateway.CallbackKey = "callback-key"
	return NewPaymentController(zap.NewNop(), usecase, internalConfig)
}

func TestPaymentControllerCallback(t *testing.T) {
	body := `{"orderId":"order-1","status":"paid"}`

	t.Run("valid key and body reach the usecase", func(t *testing.T) {
		usecase := &fakePaymentUsecase{}
		ctrl := newCallbackController(usecase)

		req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
		req.Header.Set(constvars.HeaderXCallbackKey, "callback-key")
		rec := httptest.NewRecorder()
		ctrl.Callback(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, usecase.callbacks, 1)
		assert.Equal(t, "order-1", usecase.callbacks[0].OrderID)
		assert.Equal(t, constvars.PaymentOrderStatusPaid, usecase.callbacks[0].Status)
	})

	t.Run("missing key is forbidden", func(t *testing.T) {
		usecase := &fakePaymentUsecase{}
		ctrl := newCallbackController(usecase)

		req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Callback(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, usecase.callbacks)
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		usecase := &fakePaymentUsecase{}
		ctrl := newCallbackController(usecase)

		req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
		req.Header.Set(constvars.HeaderXCallbackKey, "guessed-key")
		rec := httptest.NewRecorder()
		ctrl.Callback(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, usecase.callbacks)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		usecase := &fakePaymentUsecase{}
		ctrl := newCallbackController(usecase)

		req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader("{not json"))
		req.Header.Set(constvars.HeaderXCallbackKey, "callback-key")
		rec := httptest.NewRecorder()
		ctrl.Callback(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, usecase.callbacks)
	})
}
