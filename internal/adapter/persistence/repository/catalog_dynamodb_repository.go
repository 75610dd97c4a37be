package repository

import (
	"context"

	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName        = "services"
	defaultComplexityTableName      = "complexity_options"
	defaultAdditionalTableName      = "additional_services"
	catalogSlugIndex                = "slug-index"
	complexityOptionsServiceIDIndex = "service_id-index"
)

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Slug        string `dynamodbav:"slug"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category"`
	Icon        string `dynamodbav:"icon"`
	BasePrice   int64  `dynamodbav:"base_price"`
	IsActive    bool   `dynamodbav:"is_active"`
}

type complexityOptionItem struct {
	ID          string `dynamodbav:"id"`
	ServiceID   string `dynamodbav:"service_id"`
	Name        string `dynamodbav:"name"`
	Slug        string `dynamodbav:"slug"`
	Description string `dynamodbav:"description"`
	MinPrice    int64  `dynamodbav:"min_price"`
	MaxPrice    int64  `dynamodbav:"max_price"`
}

type additionalServiceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Slug        string `dynamodbav:"slug"`
	Description string `dynamodbav:"description"`
	Icon        string `dynamodbav:"icon"`
	MinPrice    int64  `dynamodbav:"min_price"`
	MaxPrice    int64  `dynamodbav:"max_price"`
}

// CatalogDynamoRepository persists the priced catalog in DynamoDB.
//
// Table requirements:
//   - services:            PK id, GSI slug-index (PK slug)
//   - complexity_options:  PK id, GSI slug-index, GSI service_id-index
//   - additional_services: PK id, GSI slug-index
//
// The slug indexes exist for the seed command's upsert-by-slug path only;
// the intake workflow always resolves by id.

type CatalogDynamoRepository struct {
	ddb             *dynamodb.Client
	servicesTable   string
	complexityTable string
	additionalTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:             ddb,
		servicesTable:   getenvDefault("SERVICES_TABLE", defaultServicesTableName),
		complexityTable: getenvDefault("COMPLEXITY_OPTIONS_TABLE", defaultComplexityTableName),
		additionalTable: getenvDefault("ADDITIONAL_SERVICES_TABLE", defaultAdditionalTableName),
	}
}

func (r *CatalogDynamoRepository) GetComplexityOption(ctx context.Context, id string) (entities.ComplexityOption, error) {
	var it complexityOptionItem
	found, err := r.getByID(ctx, r.complexityTable, id, &it)
	if err != nil || !found {
		return entities.ComplexityOption{}, err
	}
	return fromComplexityOptionItem(it), nil
}

func (r *CatalogDynamoRepository) GetAdditionalService(ctx context.Context, id string) (entities.AdditionalService, error) {
	var it additionalServiceItem
	found, err := r.getByID(ctx, r.additionalTable, id, &it)
	if err != nil || !found {
		return entities.AdditionalService{}, err
	}
	return fromAdditionalServiceItem(it), nil
}

func (r *CatalogDynamoRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	items, err := r.scan(ctx, r.servicesTable)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Service, 0, len(items))
	for _, raw := range items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

func (r *CatalogDynamoRepository) ListComplexityOptionsByService(ctx context.Context, serviceID string) ([]entities.ComplexityOption, error) {
	q, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.complexityTable),
		IndexName:              aws.String(complexityOptionsServiceIDIndex),
		KeyConditionExpression: aws.String("#service_id = :service_id"),
		ExpressionAttributeNames: map[string]string{
			"#service_id": "service_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":service_id": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.ComplexityOption, 0, len(q.Items))
	for _, raw := range q.Items {
		var it complexityOptionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromComplexityOptionItem(it))
	}
	return out, nil
}

func (r *CatalogDynamoRepository) ListAdditionalServices(ctx context.Context) ([]entities.AdditionalService, error) {
	items, err := r.scan(ctx, r.additionalTable)
	if err != nil {
		return nil, err
	}

	out := make([]entities.AdditionalService, 0, len(items))
	for _, raw := range items {
		var it additionalServiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromAdditionalServiceItem(it))
	}
	return out, nil
}

func (r *CatalogDynamoRepository) GetServiceBySlug(ctx context.Context, slug string) (entities.Service, error) {
	var it serviceItem
	found, err := r.getBySlug(ctx, r.servicesTable, slug, &it)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *CatalogDynamoRepository) GetComplexityOptionBySlug(ctx context.Context, slug string) (entities.ComplexityOption, error) {
	var it complexityOptionItem
	found, err := r.getBySlug(ctx, r.complexityTable, slug, &it)
	if err != nil || !found {
		return entities.ComplexityOption{}, err
	}
	return fromComplexityOptionItem(it), nil
}

func (r *CatalogDynamoRepository) GetAdditionalServiceBySlug(ctx context.Context, slug string) (entities.AdditionalService, error) {
	var it additionalServiceItem
	found, err := r.getBySlug(ctx, r.additionalTable, slug, &it)
	if err != nil || !found {
		return entities.AdditionalService{}, err
	}
	return fromAdditionalServiceItem(it), nil
}

func (r *CatalogDynamoRepository) PutService(ctx context.Context, s entities.Service) error {
	return r.put(ctx, r.servicesTable, toServiceItem(s))
}

func (r *CatalogDynamoRepository) PutComplexityOption(ctx context.Context, c entities.ComplexityOption) error {
	return r.put(ctx, r.complexityTable, toComplexityOptionItem(c))
}

func (r *CatalogDynamoRepository) PutAdditionalService(ctx context.Context, a entities.AdditionalService) error {
	return r.put(ctx, r.additionalTable, toAdditionalServiceItem(a))
}

func (r *CatalogDynamoRepository) getByID(ctx context.Context, table, id string, dst any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, dst)
}

func (r *CatalogDynamoRepository) getBySlug(ctx context.Context, table, slug string, dst any) (bool, error) {
	q, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(catalogSlugIndex),
		KeyConditionExpression: aws.String("#slug = :slug"),
		ExpressionAttributeNames: map[string]string{
			"#slug": "slug",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	if len(q.Items) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(q.Items[0], dst)
}

func (r *CatalogDynamoRepository) scan(ctx context.Context, table string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CatalogDynamoRepository) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Category:    string(s.Category),
		Icon:        s.Icon,
		BasePrice:   s.BasePrice,
		IsActive:    s.IsActive,
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Slug:        it.Slug,
		Description: it.Description,
		Category:    entities.ServiceCategory(it.Category),
		Icon:        it.Icon,
		BasePrice:   it.BasePrice,
		IsActive:    it.IsActive,
	}
}

func toComplexityOptionItem(c entities.ComplexityOption) complexityOptionItem {
	return complexityOptionItem{
		ID:          c.ID,
		ServiceID:   c.ServiceID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		MinPrice:    c.MinPrice,
		MaxPrice:    c.MaxPrice,
	}
}

func fromComplexityOptionItem(it complexityOptionItem) entities.ComplexityOption {
	return entities.ComplexityOption{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		Name:        it.Name,
		Slug:        it.Slug,
		Description: it.Description,
		MinPrice:    it.MinPrice,
		MaxPrice:    it.MaxPrice,
	}
}

func toAdditionalServiceItem(a entities.AdditionalService) additionalServiceItem {
	return additionalServiceItem{
		ID:          a.ID,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		Icon:        a.Icon,
		MinPrice:    a.MinPrice,
		MaxPrice:    a.MaxPrice,
	}
}

func fromAdditionalServiceItem(it additionalServiceItem) entities.AdditionalService {
	return entities.AdditionalService{
		ID:          it.ID,
		Name:        it.Name,
		Slug:        it.Slug,
		Description: it.Description,
		Icon:        it.Icon,
		MinPrice:    it.MinPrice,
		MaxPrice:    it.MaxPrice,
	}
}
