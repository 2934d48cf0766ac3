package repository

import (
	"context"
	"strconv"
	"time"

	"mp_checkout/internal/domain/entities"
	"mp_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentsTableName = "payments"
	paymentsPaymentIDIndex   = "payment_id-index"
)

type paymentRecordItem struct {
	ID                string  `dynamodbav:"id"`
	PaymentID         string  `dynamodbav:"payment_id"`
	Status            string  `dynamodbav:"status"`
	StatusDetail      string  `dynamodbav:"status_detail,omitempty"`
	TransactionAmount float64 `dynamodbav:"transaction_amount"`
	Installments      int     `dynamodbav:"installments"`
	PaymentMethodID   string  `dynamodbav:"payment_method_id,omitempty"`
	PayerEmail        string  `dynamodbav:"payer_email,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
}

// DynamoDBAPI is the subset of *dynamodb.Client the repository calls.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id, string)

type PaymentRecordDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentRecordDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(rec))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return rec, nil
}

// GetByID returns a zero PaymentRecord when the item does not exist.
func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByPaymentID(ctx context.Context, paymentID int64) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: strconv.FormatInt(paymentID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentRecordItem(it))
	}
	return items, nil
}

func toPaymentRecordItem(rec entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                rec.ID,
		PaymentID:         strconv.FormatInt(rec.PaymentID, 10),
		Status:            rec.Status,
		StatusDetail:      rec.StatusDetail,
		TransactionAmount: rec.TransactionAmount,
		Installments:      rec.Installments,
		PaymentMethodID:   rec.PaymentMethodID,
		PayerEmail:        rec.PayerEmail,
		CreatedAt:         rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	paymentID, _ := strconv.ParseInt(it.PaymentID, 10, 64)
	return entities.PaymentRecord{
		ID:                it.ID,
		PaymentID:         paymentID,
		Status:            it.Status,
		StatusDetail:      it.StatusDetail,
		TransactionAmount: it.TransactionAmount,
		Installments:      it.Installments,
		PaymentMethodID:   it.PaymentMethodID,
		PayerEmail:        it.PayerEmail,
		CreatedAt:         dt,
	}
}
