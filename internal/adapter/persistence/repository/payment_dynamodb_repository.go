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
	defaultPaymentsTableName = "payments"
	orderIDIndexName         = "order_id-index"
)

type paymentItem struct {
	ID              string `dynamodbav:"id"`
	OrderID         string `dynamodbav:"order_id"`
	Amount          string `dynamodbav:"amount"`
	Status          string `dynamodbav:"status"`
	GatewayChargeID string `dynamodbav:"gateway_charge_id,omitempty"`
	PaymentMethod   string `dynamodbav:"payment_method,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (order_id-index): order_id

type PaymentDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	ordersTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		ordersTable: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderIDIndexName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, item := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

// ConfirmWithOrderCompletion commits payment confirmation and order
// completion as one transaction. The payment update is guarded by
// status <> COMPLETED and the order update by status = AWAITING_PAYMENT,
// so a second confirmation, the loser of a concurrent pair, or an order
// moved off AWAITING_PAYMENT in the meantime cancels the whole
// transaction and yields a zero value.
func (r *PaymentDynamoRepository) ConfirmWithOrderCompletion(ctx context.Context, paymentID, orderID, gatewayChargeID string) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: paymentID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :completed"),
					UpdateExpression:    aws.String("SET #status = :completed, #gateway_charge_id = :gateway_charge_id, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":                "id",
						"#status":            "status",
						"#gateway_charge_id": "gateway_charge_id",
						"#updated_at":        "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed":         &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
						":gateway_charge_id": &types.AttributeValueMemberS{Value: gatewayChargeID},
						":updated_at":        &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.ordersTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: orderID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :awaiting_payment"),
					UpdateExpression:    aws.String("SET #status = :completed, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed":        &types.AttributeValueMemberS{Value: string(entities.OrderStatusCompleted)},
						":awaiting_payment": &types.AttributeValueMemberS{Value: string(entities.OrderStatusAwaitingPayment)},
						":updated_at":       &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}

	return r.GetByID(ctx, paymentID)
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:              p.ID,
		OrderID:         p.OrderID,
		Amount:          floatToString(p.Amount),
		Status:          string(p.Status),
		GatewayChargeID: p.GatewayChargeID,
		PaymentMethod:   p.PaymentMethod,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Payment{
		ID:              it.ID,
		OrderID:         it.OrderID,
		Amount:          amount,
		Status:          entities.PaymentStatus(it.Status),
		GatewayChargeID: it.GatewayChargeID,
		PaymentMethod:   it.PaymentMethod,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
