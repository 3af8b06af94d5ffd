package repository

import (
	"context"

	"daon_interior/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFormulasTableName = "formulas"

type formulaItem struct {
	Key        string `dynamodbav:"formula_key"`
	Expression string `dynamodbav:"expression"`
}

// FormulaDynamoRepository stores pleat-count formula overrides. Only
// overrides live here; builtin formulas stay in code and are never written.
type FormulaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFormulaRepository = (*FormulaDynamoRepository)(nil)

func NewFormulaDynamoRepository(ddb *dynamodb.Client) *FormulaDynamoRepository {
	return &FormulaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORMULAS_TABLE", defaultFormulasTableName),
	}
}

func (r *FormulaDynamoRepository) Load(ctx context.Context) (map[string]string, error) {
	overrides := map[string]string{}
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it formulaItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			overrides[it.Key] = it.Expression
		}
		if out.LastEvaluatedKey == nil {
			return overrides, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func (r *FormulaDynamoRepository) Save(ctx context.Context, key, expression string) error {
	av, err := attributevalue.MarshalMap(formulaItem{Key: key, Expression: expression})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *FormulaDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"formula_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
