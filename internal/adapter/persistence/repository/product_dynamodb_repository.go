package repository

import (
	"context"

	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	Code            string  `dynamodbav:"code"`
	Name            string  `dynamodbav:"name"`
	VendorName      string  `dynamodbav:"vendor_name"`
	Brand           string  `dynamodbav:"brand"`
	Category        string  `dynamodbav:"category"`
	SalePrice       float64 `dynamodbav:"sale_price"`
	PurchaseCost    float64 `dynamodbav:"purchase_cost"`
	LargePlainPrice float64 `dynamodbav:"large_plain_price,omitempty"`
	LargePlainCost  float64 `dynamodbav:"large_plain_cost,omitempty"`
	WidthMM         float64 `dynamodbav:"width_mm"`
	Details         string  `dynamodbav:"details,omitempty"`
	InsideOutside   string  `dynamodbav:"inside_outside,omitempty"`
	MinOrderQty     float64 `dynamodbav:"min_order_qty,omitempty"`
}

// ProductDynamoRepository persists the fabric/blind catalog in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
//
// Name search scans with a begins_with filter; the catalog is small and
// read-mostly, so a dedicated index is not worth its upkeep.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) SearchByName(ctx context.Context, prefix string) ([]entities.Product, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("begins_with(#name, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	})
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *ProductDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Product, error) {
	var all []entities.Product
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			all = append(all, fromProductItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return all, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		Code:            it.Code,
		Name:            it.Name,
		VendorName:      it.VendorName,
		Brand:           it.Brand,
		Category:        entities.ProductType(it.Category),
		SalePrice:       it.SalePrice,
		PurchaseCost:    it.PurchaseCost,
		LargePlainPrice: it.LargePlainPrice,
		LargePlainCost:  it.LargePlainCost,
		WidthMM:         it.WidthMM,
		Details:         it.Details,
		InsideOutside:   entities.InsideOutside(it.InsideOutside),
		MinOrderQty:     it.MinOrderQty,
	}
}
