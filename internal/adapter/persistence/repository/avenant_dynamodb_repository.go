package repository

import (
	"chantierplus/internal/domain/entities"
	"chantierplus/internal/usecase/interfaces"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultAvenantsTableName = "avenants"
	chantierIndexName        = "chantier_id-index"
)

// DynamoAPI is the subset of the DynamoDB client used by the repository.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type avenantItem struct {
	ID              string   `dynamodbav:"id"`
	ChantierID      string   `dynamodbav:"chantier_id"`
	Description     string   `dynamodbav:"description"`
	Type            string   `dynamodbav:"type"`
	Price           string   `dynamodbav:"price,omitempty"`
	Hours           string   `dynamodbav:"hours,omitempty"`
	HourlyRate      string   `dynamodbav:"hourly_rate,omitempty"`
	TotalHT         string   `dynamodbav:"total_ht"`
	PhotoURL        string   `dynamodbav:"photo_url"`
	SignatureData   string   `dynamodbav:"signature_data"`
	SignatureDigest string   `dynamodbav:"signature_digest"`
	ContentDigest   string   `dynamodbav:"content_digest"`
	SignedAt        string   `dynamodbav:"signed_at"`
	Status          string   `dynamodbav:"status"`
	Recipients      []string `dynamodbav:"recipients,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// AvenantDynamoRepository persists signed avenants in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI chantier_id-index: PK chantier_id (string)
//
// Records are write-once except for status.

type AvenantDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAvenantRepository = (*AvenantDynamoRepository)(nil)

func NewAvenantDynamoRepository(ddb DynamoAPI, tableName string) *AvenantDynamoRepository {
	if tableName == "" {
		tableName = DefaultAvenantsTableName
	}
	return &AvenantDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AvenantDynamoRepository) Create(ctx context.Context, a entities.Avenant) (entities.Avenant, error) {
	av, err := attributevalue.MarshalMap(toAvenantItem(a))
	if err != nil {
		return entities.Avenant{}, err
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
		return entities.Avenant{}, err
	}
	return a, nil
}

func (r *AvenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Avenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Avenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Avenant{}, nil
	}

	var it avenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Avenant{}, err
	}
	return fromAvenantItem(it), nil
}

// ListByChantierID returns the avenants of a chantier, newest first.
func (r *AvenantDynamoRepository) ListByChantierID(ctx context.Context, chantierID string) ([]entities.Avenant, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chantierIndexName),
		KeyConditionExpression: aws.String("#chantier_id = :chantier_id"),
		ExpressionAttributeNames: map[string]string{
			"#chantier_id": "chantier_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":chantier_id": &types.AttributeValueMemberS{Value: chantierID},
		},
	})

	out := []entities.Avenant{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []avenantItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromAvenantItem(it))
		}
	}

	slices.SortFunc(out, func(a, b entities.Avenant) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *AvenantDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.AvenantStatus) (entities.Avenant, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AvenantDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Avenant, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Avenant{}, nil
		}
		return entities.Avenant{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Avenant{}, nil
	}
	var it avenantItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Avenant{}, err
	}
	return fromAvenantItem(it), nil
}

func toAvenantItem(a entities.Avenant) avenantItem {
	return avenantItem{
		ID:              a.ID,
		ChantierID:      a.ChantierID,
		Description:     a.Description,
		Type:            string(a.Type),
		Price:           optionalFloat(a.Price),
		Hours:           optionalFloat(a.Hours),
		HourlyRate:      optionalFloat(a.HourlyRate),
		TotalHT:         floatToString(a.TotalHT),
		PhotoURL:        a.PhotoURL,
		SignatureData:   a.SignatureData,
		SignatureDigest: a.SignatureDigest,
		ContentDigest:   a.ContentDigest,
		SignedAt:        formatTime(a.SignedAt),
		Status:          string(a.Status),
		Recipients:      a.Recipients,
		CreatedAt:       formatTime(a.CreatedAt),
		UpdatedAt:       formatTime(a.UpdatedAt),
	}
}

func fromAvenantItem(it avenantItem) entities.Avenant {
	return entities.Avenant{
		ID:              it.ID,
		ChantierID:      it.ChantierID,
		Description:     it.Description,
		Type:            entities.PricingMode(it.Type),
		Price:           parseOptionalFloat(it.Price),
		Hours:           parseOptionalFloat(it.Hours),
		HourlyRate:      parseOptionalFloat(it.HourlyRate),
		TotalHT:         parseFloat(it.TotalHT),
		PhotoURL:        it.PhotoURL,
		SignatureData:   it.SignatureData,
		SignatureDigest: it.SignatureDigest,
		ContentDigest:   it.ContentDigest,
		SignedAt:        parseTime(it.SignedAt),
		Status:          entities.AvenantStatus(it.Status),
		Recipients:      it.Recipients,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
