package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"mp_checkout/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamoDB struct {
	items    map[string]map[string]types.AttributeValue
	putIn    *dynamodb.PutItemInput
	queryIn  *dynamodb.QueryInput
	queryOut []map[string]types.AttributeValue
	err      error
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.putIn = in
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.queryIn = in
	return &dynamodb.QueryOutput{Items: f.queryOut}, nil
}

func sampleRecord() entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:                "rec-1",
		PaymentID:         123,
		Status:            "approved",
		StatusDetail:      "accredited",
		TransactionAmount: 100.5,
		Installments:      3,
		PaymentMethodID:   "visa",
		PayerEmail:        "buyer@test.com",
		CreatedAt:         time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPaymentRecordDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamoDB()
	repo := NewPaymentRecordDynamoRepository(ddb, "")

	created, err := repo.Create(context.Background(), sampleRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "rec-1" {
		t.Fatalf("unexpected created record: %+v", created)
	}
	if aws.ToString(ddb.putIn.TableName) != DefaultPaymentsTableName {
		t.Fatalf("expected default table, got %s", aws.ToString(ddb.putIn.TableName))
	}
	if aws.ToString(ddb.putIn.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("expected conditional put")
	}

	got, err := repo.GetByID(context.Background(), "rec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := sampleRecord()
	if got.PaymentID != want.PaymentID || got.Status != want.Status || got.TransactionAmount != want.TransactionAmount {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}

	missing, err := repo.GetByID(context.Background(), "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected empty record for missing id, got %+v err=%v", missing, err)
	}
}

func TestPaymentRecordDynamoRepository_ListByPaymentID(t *testing.T) {
	ddb := newFakeDynamoDB()
	item, err := attributevalue.MarshalMap(toPaymentRecordItem(sampleRecord()))
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	ddb.queryOut = []map[string]types.AttributeValue{item}
	repo := NewPaymentRecordDynamoRepository(ddb, "checkout_payments")

	got, err := repo.ListByPaymentID(context.Background(), 123)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "rec-1" {
		t.Fatalf("unexpected records: %+v", got)
	}
	if aws.ToString(ddb.queryIn.TableName) != "checkout_payments" || aws.ToString(ddb.queryIn.IndexName) != paymentsPaymentIDIndex {
		t.Fatalf("unexpected query target: %+v", ddb.queryIn)
	}
	pid := ddb.queryIn.ExpressionAttributeValues[":pid"].(*types.AttributeValueMemberS).Value
	if pid != "123" {
		t.Fatalf("expected payment id key 123, got %s", pid)
	}
}

func TestPaymentRecordDynamoRepository_Errors(t *testing.T) {
	ddb := newFakeDynamoDB()
	ddb.err = errors.New("ddb")
	repo := NewPaymentRecordDynamoRepository(ddb, "payments")

	if _, err := repo.Create(context.Background(), sampleRecord()); err == nil {
		t.Fatalf("expected create error")
	}
	if _, err := repo.GetByID(context.Background(), "rec-1"); err == nil {
		t.Fatalf("expected get error")
	}
	if _, err := repo.ListByPaymentID(context.Background(), 1); err == nil {
		t.Fatalf("expected list error")
	}
}
