package repository

import (
	"context"
	"encoding/json"
	"time"

	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	Number        string `dynamodbav:"number"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerPhone string `dynamodbav:"customer_phone"`
	Address       string `dynamodbav:"address"`
	Memo          string `dynamodbav:"memo,omitempty"`
	Rows          string `dynamodbav:"rows"` // row list as one JSON document
	CreatedAt     string `dynamodbav:"created_at"`
	SavedAt       string `dynamodbav:"saved_at"`
}

// EstimateDynamoRepository persists estimate documents in DynamoDB.
//
// Table requirements:
//   - PK: number (string)
//
// The serial number is the natural key; saving is an upsert so revisions of
// the same number always converge on the latest document. Rows are stored as
// a single JSON attribute: the document is always read and written whole, and
// the Korean enum literals round-trip untouched through JSON.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Put(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: number},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	var (
		all     []entities.Estimate
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, err := fromEstimateItem(it)
			if err != nil {
				return nil, err
			}
			all = append(all, e)
		}
		if out.LastEvaluatedKey == nil {
			return all, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, number string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: number},
		},
	})
	return err
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	rows := e.Rows
	if rows == nil {
		rows = []entities.EstimateRow{}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		Number:        e.Number,
		CustomerName:  e.CustomerName,
		CustomerPhone: e.CustomerPhone,
		Address:       e.Address,
		Memo:          e.Memo,
		Rows:          string(b),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		SavedAt:       e.SavedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var rows []entities.EstimateRow
	if it.Rows != "" {
		if err := json.Unmarshal([]byte(it.Rows), &rows); err != nil {
			return entities.Estimate{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	savedAt, _ := time.Parse(time.RFC3339Nano, it.SavedAt)
	return entities.Estimate{
		Number:        it.Number,
		CustomerName:  it.CustomerName,
		CustomerPhone: it.CustomerPhone,
		Address:       it.Address,
		Memo:          it.Memo,
		Rows:          rows,
		CreatedAt:     createdAt,
		SavedAt:       savedAt,
	}, nil
}
