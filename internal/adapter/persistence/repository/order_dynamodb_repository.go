package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	clientIDIndexName      = "client_id-index"
)

type orderItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	OperatorID  string `dynamodbav:"operator_id,omitempty"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Status      string `dynamodbav:"status"`
	Price       string `dynamodbav:"price"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (client_id-index): client_id
//
// The status guard of assignment is a ConditionExpression on the update, so
// two concurrent assigns of the same NEW order resolve in the store: the
// loser's conditional check fails and surfaces as a zero-value order.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	analyses  string
	payments  string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		analyses:  getenvDefault("ANALYSES_TABLE", defaultAnalysesTableName),
		payments:  getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientIDIndexName),
		KeyConditionExpression: aws.String("#client_id = :client_id"),
		ExpressionAttributeNames: map[string]string{
			"#client_id": "client_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":client_id": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, item := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

// AssignIfNew is the compare-and-set on the NEW status. A failed condition
// (already assigned or concurrently taken) returns a zero-value order.
func (r *OrderDynamoRepository) AssignIfNew(ctx context.Context, orderID, operatorID string) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :new"),
		UpdateExpression:    aws.String("SET #status = :in_progress, #operator_id = :operator_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#operator_id": "operator_id",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new":         &types.AttributeValueMemberS{Value: string(entities.OrderStatusNew)},
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.OrderStatusInProgress)},
			":operator_id": &types.AttributeValueMemberS{Value: operatorID},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) UpdateFields(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if upd.Title != nil {
		expr += ", #title = :title"
		names["#title"] = "title"
		values[":title"] = &types.AttributeValueMemberS{Value: *upd.Title}
	}
	if upd.Description != nil {
		expr += ", #description = :description"
		names["#description"] = "description"
		values[":description"] = &types.AttributeValueMemberS{Value: *upd.Description}
	}
	if upd.Price != nil {
		expr += ", #price = :price"
		names["#price"] = "price"
		values[":price"] = &types.AttributeValueMemberS{Value: floatToString(*upd.Price)}
	}
	if upd.Status != nil {
		expr += ", #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*upd.Status)}
	}
	if upd.OperatorID != nil {
		expr += ", #operator_id = :operator_id"
		names["#operator_id"] = "operator_id"
		values[":operator_id"] = &types.AttributeValueMemberS{Value: *upd.OperatorID}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// DeleteWithChildren removes the order, its analysis row (keyed by the order
// id) and the given payment rows in one transaction.
func (r *OrderDynamoRepository) DeleteWithChildren(ctx context.Context, orderID string, paymentIDs []string) error {
	items := []types.TransactWriteItem{
		{
			Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: orderID},
				},
			},
		},
		{
			Delete: &types.Delete{
				TableName: aws.String(r.analyses),
				Key: map[string]types.AttributeValue{
					"order_id": &types.AttributeValueMemberS{Value: orderID},
				},
			},
		},
	}
	for _, paymentID := range paymentIDs {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.payments),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: paymentID},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return err
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:          o.ID,
		ClientID:    o.ClientID,
		OperatorID:  o.OperatorID,
		Title:       o.Title,
		Description: o.Description,
		Status:      string(o.Status),
		Price:       floatToString(o.Price),
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Order{
		ID:          it.ID,
		ClientID:    it.ClientID,
		OperatorID:  it.OperatorID,
		Title:       it.Title,
		Description: it.Description,
		Status:      entities.OrderStatus(it.Status),
		Price:       price,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
