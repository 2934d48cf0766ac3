package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"mp_checkout/internal/domain/entities"
	"mp_checkout/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADO_PAGO_SAMPLE_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[payment][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req entities.GatewayPaymentRequest) (entities.GatewayPaymentResult, error) {
	if g != nil && g.mockMode {
		id := time.Now().UTC().UnixNano()
		log.Printf("[payment][gateway] mock create success payment_id=%d status=approved", id)
		return entities.GatewayPaymentResult{ID: id, Status: "approved", StatusDetail: "accredited"}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.GatewayPaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payment_method_id=%s installments=%d", req.PaymentMethodID, req.Installments)

	resp, err := g.client.Create(ctx, toSDKRequest(req))
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.GatewayPaymentResult{}, toGatewayError(err)
	}
	log.Printf("[payment][gateway] create success payment_id=%d status=%s status_detail=%s", resp.ID, resp.Status, resp.StatusDetail)

	return entities.GatewayPaymentResult{
		ID:           int64(resp.ID),
		Status:       resp.Status,
		StatusDetail: resp.StatusDetail,
	}, nil
}

func toSDKRequest(req entities.GatewayPaymentRequest) payment.Request {
	amount := req.TransactionAmount
	// JSON has no NaN/Inf; the amount is dropped and the API reports it missing.
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	return payment.Request{
		TransactionAmount: amount,
		Token:             req.Token,
		Description:       req.Description,
		Installments:      req.Installments,
		PaymentMethodID:   req.PaymentMethodID,
		IssuerID:          req.IssuerID,
		Payer: &payment.PayerRequest{
			Email: req.Payer.Email,
			Identification: &payment.IdentificationRequest{
				Type:   req.Payer.Identification.Type,
				Number: req.Payer.Identification.Number,
			},
		},
	}
}

// toGatewayError converts SDK API failures into *entities.GatewayError.
// Anything that is not an API response (network, marshal) is returned as is.
func toGatewayError(err error) error {
	var respErr *mperror.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}
	return parseGatewayErrorBody(respErr.Message, respErr.StatusCode)
}

// parseGatewayErrorBody decodes a Mercado Pago error body, e.g.
//
//	{"message":"...","error":"bad_request","status":400,"cause":[{"code":2006,"description":"..."}]}
//
// The HTTP status code is used when the body does not report one.
func parseGatewayErrorBody(body string, statusCode int) *entities.GatewayError {
	gwErr := &entities.GatewayError{}
	err := json.Unmarshal([]byte(body), gwErr)
	var typeErr *json.UnmarshalTypeError
	if err != nil && errors.As(err, &typeErr) {
		// e.g. "status":"400"; the remaining fields were still decoded.
		log.Printf("[payment][gateway] error body field %s has unexpected type", typeErr.Field)
		err = nil
	}
	if err != nil {
		log.Printf("[payment][gateway] error body is not json status_code=%d", statusCode)
		return &entities.GatewayError{Message: body, Status: statusCode}
	}
	if gwErr.Status == 0 {
		gwErr.Status = statusCode
	}
	return gwErr
}
