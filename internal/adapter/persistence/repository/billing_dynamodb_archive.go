package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillsTableName    = "bills"
	defaultPaymentsTableName = "bill_payments"
)

// dynamoPutter is the slice of *dynamodb.Client the archive needs.
type dynamoPutter interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type billItem struct {
	ID            string `dynamodbav:"id"`
	AppointmentID string `dynamodbav:"appointment_id"`
	BaseAmount    string `dynamodbav:"base_amount"`
	TaxRate       string `dynamodbav:"tax_rate"`
	TaxAmount     string `dynamodbav:"tax_amount"`
	AmountDue     string `dynamodbav:"amount_due"`
	Currency      string `dynamodbav:"currency"`
	Strategy      string `dynamodbav:"strategy,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	ArchivedAt    string `dynamodbav:"archived_at"`
}

type billPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	BillID             string                 `dynamodbav:"bill_id"`
	Amount             string                 `dynamodbav:"amount"`
	Currency           string                 `dynamodbav:"currency"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// BillingDynamoArchive exports bills and payments to DynamoDB.
//
// Table requirements:
//   - bills: PK id (string); overwritten on every export so status changes land
//   - bill_payments: PK id (string); written once
type BillingDynamoArchive struct {
	ddb           dynamoPutter
	billsTable    string
	paymentsTable string
	now           func() time.Time
}

var _ interfaces.IBillingArchive = (*BillingDynamoArchive)(nil)

func NewBillingDynamoArchive(ddb *dynamodb.Client, billsTable, paymentsTable string) *BillingDynamoArchive {
	return newBillingDynamoArchive(ddb, billsTable, paymentsTable)
}

func newBillingDynamoArchive(ddb dynamoPutter, billsTable, paymentsTable string) *BillingDynamoArchive {
	if billsTable == "" {
		billsTable = defaultBillsTableName
	}
	if paymentsTable == "" {
		paymentsTable = defaultPaymentsTableName
	}
	return &BillingDynamoArchive{ddb: ddb, billsTable: billsTable, paymentsTable: paymentsTable, now: time.Now}
}

func (a *BillingDynamoArchive) ArchiveBill(ctx context.Context, b entities.Bill) error {
	av, err := attributevalue.MarshalMap(toBillItem(b, a.now()))
	if err != nil {
		return err
	}
	_, err = a.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.billsTable),
		Item:      av,
	})
	return err
}

// ArchivePayment treats an already archived id as success.
func (a *BillingDynamoArchive) ArchivePayment(ctx context.Context, p entities.BillPayment) error {
	av, err := attributevalue.MarshalMap(toBillPaymentItem(p))
	if err != nil {
		return err
	}
	_, err = a.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(a.paymentsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		log.Printf("[billing][archive] payment already archived payment_id=%s", p.ID)
		return nil
	}
	return err
}

func toBillItem(b entities.Bill, archivedAt time.Time) billItem {
	return billItem{
		ID:            b.ID,
		AppointmentID: b.AppointmentID,
		BaseAmount:    b.BaseAmount.StringFixed(entities.MoneyScale),
		TaxRate:       b.TaxRate.String(),
		TaxAmount:     b.TaxAmount().StringFixed(entities.MoneyScale),
		AmountDue:     b.AmountDue().StringFixed(entities.MoneyScale),
		Currency:      b.Currency,
		Strategy:      b.Strategy,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
		ArchivedAt:    archivedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toBillPaymentItem(p entities.BillPayment) billPaymentItem {
	return billPaymentItem{
		ID:                 p.ID,
		BillID:             p.BillID,
		Amount:             p.Amount.StringFixed(entities.MoneyScale),
		Currency:           p.Currency,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}
