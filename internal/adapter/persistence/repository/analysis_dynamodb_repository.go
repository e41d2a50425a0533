package repository

import (
	"context"
	"errors"
	"time"

	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAnalysesTableName = "analyses"

type analysisItem struct {
	OrderID        string `dynamodbav:"order_id"`
	ID             string `dynamodbav:"id"`
	PreviewContent string `dynamodbav:"preview_content,omitempty"`
	FullContent    string `dynamodbav:"full_content"`
	CreatedBy      string `dynamodbav:"created_by"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// AnalysisDynamoRepository persists Analysis entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//
// We purposely use the order id as PK to guarantee 1 analysis per order: the
// conditional put is the uniqueness check, no read-then-write involved.

type AnalysisDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	ordersTable string
}

var _ interfaces.IAnalysisRepository = (*AnalysisDynamoRepository)(nil)

func NewAnalysisDynamoRepository(ddb *dynamodb.Client) *AnalysisDynamoRepository {
	return &AnalysisDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("ANALYSES_TABLE", defaultAnalysesTableName),
		ordersTable: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

// CreateWithOrderAwaitingPayment inserts the analysis and flips its order to
// AWAITING_PAYMENT in one TransactWriteItems call. Either both writes commit
// or neither does; a cancelled transaction (duplicate analysis, missing or
// terminal order) returns a zero-value analysis.
func (r *AnalysisDynamoRepository) CreateWithOrderAwaitingPayment(ctx context.Context, a entities.Analysis) (entities.Analysis, error) {
	it := toAnalysisItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Analysis{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
					ExpressionAttributeNames: map[string]string{
						"#order_id": "order_id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.ordersTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.OrderID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :completed AND #status <> :cancelled"),
					UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":status":     &types.AttributeValueMemberS{Value: string(entities.OrderStatusAwaitingPayment)},
						":completed":  &types.AttributeValueMemberS{Value: string(entities.OrderStatusCompleted)},
						":cancelled":  &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelled)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Analysis{}, nil
		}
		return entities.Analysis{}, err
	}
	return a, nil
}

func (r *AnalysisDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Analysis, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Analysis{}, err
	}
	if len(out.Item) == 0 {
		return entities.Analysis{}, nil
	}

	var it analysisItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Analysis{}, err
	}
	return fromAnalysisItem(it), nil
}

func (r *AnalysisDynamoRepository) UpdateContentByOrderID(ctx context.Context, orderID string, upd entities.AnalysisUpdate) (entities.Analysis, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	names := map[string]string{
		"#order_id":   "order_id",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if upd.PreviewContent != nil {
		expr += ", #preview_content = :preview_content"
		names["#preview_content"] = "preview_content"
		values[":preview_content"] = &types.AttributeValueMemberS{Value: *upd.PreviewContent}
	}
	if upd.FullContent != nil {
		expr += ", #full_content = :full_content"
		names["#full_content"] = "full_content"
		values[":full_content"] = &types.AttributeValueMemberS{Value: *upd.FullContent}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression:       aws.String("attribute_exists(#order_id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Analysis{}, nil
		}
		return entities.Analysis{}, err
	}

	var it analysisItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Analysis{}, err
	}
	return fromAnalysisItem(it), nil
}

func toAnalysisItem(a entities.Analysis) analysisItem {
	return analysisItem{
		OrderID:        a.OrderID,
		ID:             a.ID,
		PreviewContent: a.PreviewContent,
		FullContent:    a.FullContent,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAnalysisItem(it analysisItem) entities.Analysis {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Analysis{
		ID:             it.ID,
		OrderID:        it.OrderID,
		PreviewContent: it.PreviewContent,
		FullContent:    it.FullContent,
		CreatedBy:      it.CreatedBy,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
