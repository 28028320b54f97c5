package repository

import (
	"context"
	"errors"

	"cms_backend/internal/domain/entities"
	"cms_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "lpus"
	quotesTokenIndex       = "quote_token-index"
)

type invitedSupplierItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type quoteItem struct {
	ID                  string                `dynamodbav:"id"`
	WorkID              string                `dynamodbav:"work_id"`
	LimitDate           string                `dynamodbav:"limit_date"`
	CreatedAt           string                `dynamodbav:"created_at,omitempty"`
	Status              string                `dynamodbav:"status"`
	QuoteToken          string                `dynamodbav:"quote_token,omitempty"`
	InvitedSuppliers    []invitedSupplierItem `dynamodbav:"invited_suppliers,omitempty"`
	AllowQuantityChange bool                  `dynamodbav:"allow_quantity_change"`
	AllowAddItems       bool                  `dynamodbav:"allow_add_items"`
	AllowRemoveItems    bool                  `dynamodbav:"allow_remove_items"`
	AllowLPUEdit        bool                  `dynamodbav:"allow_lpu_edit"`
	SelectedItems       []string              `dynamodbav:"selected_items,omitempty"`
	Prices              map[string]float64    `dynamodbav:"prices,omitempty"`
	Quantities          map[string]float64    `dynamodbav:"quantities,omitempty"`
	Version             int64                 `dynamodbav:"version"`
}

// QuoteDynamoRepository persists Quote (LPU) entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_token-index (PK: quote_token)
//
// Every write replaces the full record. Replace is conditional on the version
// the caller read, which is what keeps two concurrent supplier submissions
// from silently clobbering each other.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// GetByToken resolves the quote carrying token through the GSI. Token
// uniqueness is not enforced at write time, so if the index ever returns more
// than one record the lowest id wins; the caller must see a stable answer.
func (r *QuoteDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesTokenIndex),
		KeyConditionExpression: aws.String("quote_token = :tok"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tok": &types.AttributeValueMemberS{Value: token},
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	best := entities.Quote{}
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Quote{}, err
		}
		q := fromQuoteItem(it)
		if best.ID == "" || q.ID < best.ID {
			best = q
		}
	}
	return best, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

// Replace writes the full record, guarded by the version the caller last read.
// A conditional failure means either the record vanished (zero-value result)
// or another writer got there first (ErrQuoteVersionConflict).
func (r *QuoteDynamoRepository) Replace(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error) {
	q.Version = expectedVersion + 1

	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, getErr := r.GetByID(ctx, q.ID)
			if getErr != nil {
				return entities.Quote{}, getErr
			}
			if current.ID == "" {
				return entities.Quote{}, nil
			}
			return entities.Quote{}, interfaces.ErrQuoteVersionConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	invited := make([]invitedSupplierItem, 0, len(q.InvitedSuppliers))
	for _, inv := range q.InvitedSuppliers {
		invited = append(invited, invitedSupplierItem{ID: inv.ID, Name: inv.Name})
	}
	return quoteItem{
		ID:                  q.ID,
		WorkID:              q.WorkID,
		LimitDate:           q.LimitDate,
		CreatedAt:           q.CreatedAt,
		Status:              string(q.Status),
		QuoteToken:          q.QuoteToken,
		InvitedSuppliers:    invited,
		AllowQuantityChange: q.AllowQuantityChange,
		AllowAddItems:       q.AllowAddItems,
		AllowRemoveItems:    q.AllowRemoveItems,
		AllowLPUEdit:        q.AllowLPUEdit,
		SelectedItems:       q.SelectedItems,
		Prices:              q.Prices,
		Quantities:          q.Quantities,
		Version:             q.Version,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	invited := make([]entities.InvitedSupplier, 0, len(it.InvitedSuppliers))
	for _, inv := range it.InvitedSuppliers {
		invited = append(invited, entities.InvitedSupplier{ID: inv.ID, Name: inv.Name})
	}
	return entities.Quote{
		ID:                  it.ID,
		WorkID:              it.WorkID,
		LimitDate:           it.LimitDate,
		CreatedAt:           it.CreatedAt,
		Status:              entities.QuoteStatus(it.Status),
		QuoteToken:          it.QuoteToken,
		InvitedSuppliers:    invited,
		AllowQuantityChange: it.AllowQuantityChange,
		AllowAddItems:       it.AllowAddItems,
		AllowRemoveItems:    it.AllowRemoveItems,
		AllowLPUEdit:        it.AllowLPUEdit,
		SelectedItems:       it.SelectedItems,
		Prices:              it.Prices,
		Quantities:          it.Quantities,
		Version:             it.Version,
	}
}
