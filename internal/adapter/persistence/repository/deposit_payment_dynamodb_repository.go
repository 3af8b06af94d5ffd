package repository

import (
	"context"
	"time"

	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositPaymentsTableName = "deposit_payments"
	estimateNumberIndexName         = "estimate_number-index"
)

type depositPaymentItem struct {
	ID              string  `dynamodbav:"id"`
	EstimateNumber  string  `dynamodbav:"estimate_number"`
	Amount          float64 `dynamodbav:"amount"`
	Date            string  `dynamodbav:"date"`
	Status          string  `dynamodbav:"status"`
	ProviderPayload string  `dynamodbav:"provider_payload,omitempty"`
}

// DepositPaymentDynamoRepository persists deposit payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the provider payment id
//   - GSI: estimate_number-index on estimate_number
type DepositPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositPaymentRepository = (*DepositPaymentDynamoRepository)(nil)

func NewDepositPaymentDynamoRepository(ddb *dynamodb.Client) *DepositPaymentDynamoRepository {
	return &DepositPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSIT_PAYMENTS_TABLE", defaultDepositPaymentsTableName),
	}
}

func (r *DepositPaymentDynamoRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	av, err := attributevalue.MarshalMap(toDepositPaymentItem(p))
	if err != nil {
		return entities.DepositPayment{}, err
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
		return entities.DepositPayment{}, err
	}
	return p, nil
}

func (r *DepositPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DepositPayment{}, nil
	}

	var it depositPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DepositPayment{}, err
	}
	return fromDepositPaymentItem(it), nil
}

func (r *DepositPaymentDynamoRepository) ListByEstimateNumber(ctx context.Context, number string) ([]entities.DepositPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimateNumberIndexName),
		KeyConditionExpression: aws.String("estimate_number = :number"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.DepositPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromDepositPaymentItem(it))
	}
	return payments, nil
}

func toDepositPaymentItem(p entities.DepositPayment) depositPaymentItem {
	return depositPaymentItem{
		ID:              p.ID,
		EstimateNumber:  p.EstimateNumber,
		Amount:          p.Amount,
		Date:            p.Date.UTC().Format(time.RFC3339Nano),
		Status:          string(p.Status),
		ProviderPayload: string(p.ProviderPayloadRaw),
	}
}

func fromDepositPaymentItem(it depositPaymentItem) entities.DepositPayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	p := entities.DepositPayment{
		ID:             it.ID,
		EstimateNumber: it.EstimateNumber,
		Amount:         it.Amount,
		Date:           date,
		Status:         entities.PaymentStatus(it.Status),
	}
	if it.ProviderPayload != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayload)
	}
	return p
}
