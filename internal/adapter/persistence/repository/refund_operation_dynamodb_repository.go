package repository

import (
	"context"
	"strconv"
	"time"

	"decidir_refunds/internal/domain/entities"
	"decidir_refunds/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRefundOperationsTableName = "refund_operations"
	refundOperationsPaymentIDIndex   = "payment_id-index"
)

type refundOperationItem struct {
	ID          string `dynamodbav:"id"`
	Operation   string `dynamodbav:"operation"`
	PaymentID   int64  `dynamodbav:"payment_id"`
	RefundID    int64  `dynamodbav:"refund_id,omitempty"`
	User        string `dynamodbav:"user,omitempty"`
	Outcome     string `dynamodbav:"outcome"`
	Status      int    `dynamodbav:"status"`
	Message     string `dynamodbav:"message,omitempty"`
	Date        string `dynamodbav:"date"`
	ResponseRaw string `dynamodbav:"response_raw,omitempty"`
}

// RefundOperationDynamoRepository persists RefundOperation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id, number)

type RefundOperationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRefundOperationRepository = (*RefundOperationDynamoRepository)(nil)

func NewRefundOperationDynamoRepository(ddb *dynamodb.Client) *RefundOperationDynamoRepository {
	return &RefundOperationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REFUND_OPERATIONS_TABLE", defaultRefundOperationsTableName),
	}
}

func (r *RefundOperationDynamoRepository) Create(ctx context.Context, op entities.RefundOperation) (entities.RefundOperation, error) {
	av, err := attributevalue.MarshalMap(toRefundOperationItem(op))
	if err != nil {
		return entities.RefundOperation{}, err
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
		return entities.RefundOperation{}, err
	}
	return op, nil
}

func (r *RefundOperationDynamoRepository) ListByPaymentID(ctx context.Context, paymentID int64) ([]entities.RefundOperation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(refundOperationsPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberN{Value: strconv.FormatInt(paymentID, 10)},
		},
	}

	items := make([]entities.RefundOperation, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it refundOperationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRefundOperationItem(it))
		}
	}
	return items, nil
}

func toRefundOperationItem(op entities.RefundOperation) refundOperationItem {
	return refundOperationItem{
		ID:          op.ID,
		Operation:   string(op.Operation),
		PaymentID:   op.PaymentID,
		RefundID:    op.RefundID,
		User:        op.User,
		Outcome:     op.Outcome,
		Status:      op.Status,
		Message:     op.Message,
		Date:        op.Date.UTC().Format(time.RFC3339Nano),
		ResponseRaw: string(op.ResponseRaw),
	}
}

func fromRefundOperationItem(it refundOperationItem) entities.RefundOperation {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	op := entities.RefundOperation{
		ID:        it.ID,
		Operation: entities.RefundOperationType(it.Operation),
		PaymentID: it.PaymentID,
		RefundID:  it.RefundID,
		User:      it.User,
		Outcome:   it.Outcome,
		Status:    it.Status,
		Message:   it.Message,
		Date:      dt,
	}
	if it.ResponseRaw != "" {
		op.ResponseRaw = []byte(it.ResponseRaw)
	}
	return op
}
