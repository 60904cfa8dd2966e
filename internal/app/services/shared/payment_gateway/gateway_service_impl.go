package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

var (
	gatewayServiceInstance contracts.PaymentGatewayService
	onceGatewayService     sync.Once
)

type gatewayService struct {
	BaseUrl    string
	KeyID      string
	KeySecret  string
	HttpClient *http.Client
}

func NewGatewayService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	onceGatewayService.Do(func() {
		gatewayServiceInstance = &gatewayService{
			BaseUrl:   internalConfig.PaymentGateway.BaseUrl,
			KeyID:     internalConfig.PaymentGateway.KeyID,
			KeySecret: internalConfig.PaymentGateway.KeySecret,
			HttpClient: &http.Client{
				Timeout: 15 * time.Second,
			},
		}
	})
	return gatewayServiceInstance
}

func (s *gatewayService) CreateOrder(ctx context.Context, request *requests.GatewayCreateOrder) (*responses.GatewayOrder, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/orders", s.BaseUrl)
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.SetBasicAuth(s.KeyID, s.KeySecret)
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	httpResponse, err := s.HttpClient.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != constvars.StatusOK && httpResponse.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrPaymentGatewayBadStatus(httpResponse.StatusCode)
	}

	order := new(responses.GatewayOrder)
	err = json.NewDecoder(httpResponse.Body).Decode(order)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment gateway create order")
	}
	return order, nil
}

func (s *gatewayService) FetchOrder(ctx context.Context, orderID string) (*responses.GatewayOrder, error) {
	url := fmt.Sprintf("%s/orders/%s", s.BaseUrl, orderID)
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.SetBasicAuth(s.KeyID, s.KeySecret)

	httpResponse, err := s.HttpClient.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrPaymentGatewayBadStatus(httpResponse.StatusCode)
	}

	order := new(responses.GatewayOrder)
	err = json.NewDecoder(httpResponse.Body).Decode(order)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment gateway fetch order")
	}
	return order, nil
}
