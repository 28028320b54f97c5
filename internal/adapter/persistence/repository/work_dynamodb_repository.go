package repository

import (
	"context"

	"cms_backend/internal/domain/entities"
	"cms_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorksTableName = "works"

// WorkDynamoRepository persists Work entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Work is marshalled directly through its dynamodbav tags; there is no
// intermediate item struct because no field needs a storage conversion.
type WorkDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkRepository = (*WorkDynamoRepository)(nil)

func NewWorkDynamoRepository(ddb *dynamodb.Client) *WorkDynamoRepository {
	return &WorkDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKS_TABLE", defaultWorksTableName),
	}
}

func (r *WorkDynamoRepository) Create(ctx context.Context, w entities.Work) (entities.Work, error) {
	av, err := attributevalue.MarshalMap(w)
	if err != nil {
		return entities.Work{}, err
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
		return entities.Work{}, err
	}
	return w, nil
}

func (r *WorkDynamoRepository) GetByID(ctx context.Context, id string) (entities.Work, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Work{}, err
	}
	if len(out.Item) == 0 {
		return entities.Work{}, nil
	}

	var w entities.Work
	if err := attributevalue.UnmarshalMap(out.Item, &w); err != nil {
		return entities.Work{}, err
	}
	return w, nil
}

func (r *WorkDynamoRepository) List(ctx context.Context) ([]entities.Work, error) {
	works := make([]entities.Work, 0)

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
			var w entities.Work
			if err := attributevalue.UnmarshalMap(raw, &w); err != nil {
				return nil, err
			}
			works = append(works, w)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return works, nil
}

func (r *WorkDynamoRepository) Update(ctx context.Context, w entities.Work) (entities.Work, error) {
	av, err := attributevalue.MarshalMap(w)
	if err != nil {
		return entities.Work{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Work{}, err
	}
	return w, nil
}

func (r *WorkDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}
