package repository

import (
	"context"
	"time"

	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	Email          string `dynamodbav:"email"`
	ID             string `dynamodbav:"id"`
	FullName       string `dynamodbav:"full_name"`
	Phone          string `dynamodbav:"phone"`
	CountryCode    string `dynamodbav:"country_code"`
	CompanyName    string `dynamodbav:"company_name,omitempty"`
	CompanyWebsite string `dynamodbav:"company_website,omitempty"`
	ContactMethod  string `dynamodbav:"contact_method"`
	ContactTime    string `dynamodbav:"contact_time"`
	ReferralSource string `dynamodbav:"referral_source,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ClientDynamoRepository reads Client rows from DynamoDB.
//
// Table requirements:
//   - PK: email (string)
//
// We purposely use the email as PK: the intake workflow deduplicates clients
// by email, so the conditional put issued by the submission transaction
// enforces one row per address without any extra index.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		Email:          c.Email,
		ID:             c.ID,
		FullName:       c.FullName,
		Phone:          c.Phone,
		CountryCode:    c.CountryCode,
		CompanyName:    c.CompanyName,
		CompanyWebsite: c.CompanyWebsite,
		ContactMethod:  string(c.ContactMethod),
		ContactTime:    string(c.ContactTime),
		ReferralSource: c.ReferralSource,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Client{
		ID:             it.ID,
		Email:          it.Email,
		FullName:       it.FullName,
		Phone:          it.Phone,
		CountryCode:    it.CountryCode,
		CompanyName:    it.CompanyName,
		CompanyWebsite: it.CompanyWebsite,
		ContactMethod:  entities.ContactMethod(it.ContactMethod),
		ContactTime:    entities.ContactTime(it.ContactTime),
		ReferralSource: it.ReferralSource,
		CreatedAt:      createdAt,
	}
}
