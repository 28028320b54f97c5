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

const defaultSuppliersTableName = "suppliers"

type supplierItem struct {
	ID                  string `dynamodbav:"id"`
	SocialReason        string `dynamodbav:"social_reason"`
	CNPJ                string `dynamodbav:"cnpj"`
	ContractStart       string `dynamodbav:"contract_start"`
	ContractEnd         string `dynamodbav:"contract_end"`
	Project             string `dynamodbav:"project"`
	HiringType          string `dynamodbav:"hiring_type"`
	Headquarters        string `dynamodbav:"headquarters"`
	LegalRepresentative string `dynamodbav:"legal_representative"`
	RepresentativeEmail string `dynamodbav:"representative_email"`
	Contact             string `dynamodbav:"contact"`
	Witness             string `dynamodbav:"witness"`
	WitnessEmail        string `dynamodbav:"witness_email"`
	Observations        string `dynamodbav:"observations"`
}

// SupplierDynamoRepository persists supplier directory entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type SupplierDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb *dynamodb.Client) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUPPLIERS_TABLE", defaultSuppliersTableName),
	}
}

func (r *SupplierDynamoRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	av, err := attributevalue.MarshalMap(toSupplierItem(s))
	if err != nil {
		return entities.Supplier{}, err
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
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	if len(out.Item) == 0 {
		return entities.Supplier{}, nil
	}

	var it supplierItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(it), nil
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	suppliers := make([]entities.Supplier, 0)

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
			var it supplierItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			suppliers = append(suppliers, fromSupplierItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return suppliers, nil
}

func (r *SupplierDynamoRepository) Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	av, err := attributevalue.MarshalMap(toSupplierItem(s))
	if err != nil {
		return entities.Supplier{}, err
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
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSupplierItem(s entities.Supplier) supplierItem {
	return supplierItem{
		ID:                  s.ID,
		SocialReason:        s.SocialReason,
		CNPJ:                s.CNPJ,
		ContractStart:       s.ContractStart,
		ContractEnd:         s.ContractEnd,
		Project:             s.Project,
		HiringType:          s.HiringType,
		Headquarters:        s.Headquarters,
		LegalRepresentative: s.LegalRepresentative,
		RepresentativeEmail: s.RepresentativeEmail,
		Contact:             s.Contact,
		Witness:             s.Witness,
		WitnessEmail:        s.WitnessEmail,
		Observations:        s.Observations,
	}
}

func fromSupplierItem(it supplierItem) entities.Supplier {
	return entities.Supplier{
		ID:                  it.ID,
		SocialReason:        it.SocialReason,
		CNPJ:                it.CNPJ,
		ContractStart:       it.ContractStart,
		ContractEnd:         it.ContractEnd,
		Project:             it.Project,
		HiringType:          it.HiringType,
		Headquarters:        it.Headquarters,
		LegalRepresentative: it.LegalRepresentative,
		RepresentativeEmail: it.RepresentativeEmail,
		Contact:             it.Contact,
		Witness:             it.Witness,
		WitnessEmail:        it.WitnessEmail,
		Observations:        it.Observations,
	}
}
