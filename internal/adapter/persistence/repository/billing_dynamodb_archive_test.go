package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"meditrack/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type fakePutter struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakePutter) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestBillingDynamoArchive_ArchiveBill(t *testing.T) {
	fake := &fakePutter{}
	a := newBillingDynamoArchive(fake, "", "")
	a.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	b := entities.Bill{
		Entity:        entities.NewEntity("BILL-1", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)),
		AppointmentID: "APT-1",
		BaseAmount:    decimal.NewFromInt(1000),
		TaxRate:       decimal.RequireFromString("0.18"),
		Currency:      "INR",
		Status:        entities.BillStatusPending,
	}
	if err := a.ArchiveBill(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("expected one put, got %d", len(fake.inputs))
	}
	in := fake.inputs[0]
	if *in.TableName != "bills" || in.ConditionExpression != nil {
		t.Fatalf("unexpected put input table=%s cond=%v", *in.TableName, in.ConditionExpression)
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(in.Item, &it); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if it.AmountDue != "1180.00" || it.TaxAmount != "180.00" || it.BaseAmount != "1000.00" {
		t.Fatalf("unexpected figures %+v", it)
	}
	if it.ArchivedAt != "2024-01-01T12:00:00Z" {
		t.Fatalf("unexpected archived_at %s", it.ArchivedAt)
	}
}

func TestBillingDynamoArchive_ArchivePayment(t *testing.T) {
	p := entities.BillPayment{ID: "pay-1", BillID: "BILL-1", Amount: decimal.NewFromInt(10), Status: entities.PaymentStatusApproved}

	t.Run("conditional put", func(t *testing.T) {
		fake := &fakePutter{}
		a := newBillingDynamoArchive(fake, "bills", "payments_archive")
		if err := a.ArchivePayment(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := fake.inputs[0]
		if *in.TableName != "payments_archive" || in.ConditionExpression == nil {
			t.Fatalf("expected conditional put on payments table")
		}
	})

	t.Run("already archived is success", func(t *testing.T) {
		fake := &fakePutter{err: &types.ConditionalCheckFailedException{}}
		a := newBillingDynamoArchive(fake, "", "")
		if err := a.ArchivePayment(context.Background(), p); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		fake := &fakePutter{err: boom}
		a := newBillingDynamoArchive(fake, "", "")
		if err := a.ArchivePayment(context.Background(), p); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}
