package repository

import (
	"context"
	"errors"
	"time"

	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName          = "projects"
	defaultProjectServicesTableName   = "project_services"
	defaultProjectAdditionalTableName = "project_additional_services"
	defaultProjectActivitiesTableName = "project_activities"
	conditionalCheckFailedReason      = "ConditionalCheckFailed"
)

type projectItem struct {
	ReferenceID      string  `dynamodbav:"reference_id"`
	ID               string  `dynamodbav:"id"`
	ClientID         string  `dynamodbav:"client_id"`
	ProjectName      string  `dynamodbav:"project_name"`
	Description      string  `dynamodbav:"description"`
	ProjectType      string  `dynamodbav:"project_type"`
	Timeline         string  `dynamodbav:"timeline"`
	TimelineModifier float64 `dynamodbav:"timeline_modifier"`
	EstimatedMin     int64   `dynamodbav:"estimated_min"`
	EstimatedMax     int64   `dynamodbav:"estimated_max"`
	BudgetRangeMin   int64   `dynamodbav:"budget_range_min"`
	BudgetRangeMax   int64   `dynamodbav:"budget_range_max"`
	AdditionalNotes  string  `dynamodbav:"additional_notes,omitempty"`
	Status           string  `dynamodbav:"status"`
	CreatedAt        string  `dynamodbav:"created_at"`
}

type projectServiceItem struct {
	ID                 string `dynamodbav:"id"`
	ProjectID          string `dynamodbav:"project_id"`
	ServiceID          string `dynamodbav:"service_id"`
	ComplexityOptionID string `dynamodbav:"complexity_option_id"`
	SelectedMinPrice   int64  `dynamodbav:"selected_min_price"`
	SelectedMaxPrice   int64  `dynamodbav:"selected_max_price"`
}

type projectAdditionalServiceItem struct {
	ID                  string `dynamodbav:"id"`
	ProjectID           string `dynamodbav:"project_id"`
	AdditionalServiceID string `dynamodbav:"additional_service_id"`
	SelectedMinPrice    int64  `dynamodbav:"selected_min_price"`
	SelectedMaxPrice    int64  `dynamodbav:"selected_max_price"`
}

type projectActivityItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	Type        string `dynamodbav:"type"`
	Action      string `dynamodbav:"action"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ProjectDynamoRepository persists submissions in DynamoDB.
//
// Table requirements:
//   - projects:                    PK reference_id (string)
//   - project_services:            PK id (string)
//   - project_additional_services: PK id (string)
//   - project_activities:          PK id (string)
//
// CreateSubmission issues one TransactWriteItems call covering every row of
// the submission, so a cancelled context or any conditional failure rolls the
// whole thing back: no orphaned project, junction, activity, or client rows.

type ProjectDynamoRepository struct {
	ddb             *dynamodb.Client
	projectsTable   string
	servicesTable   string
	additionalTable string
	activitiesTable string
	clientsTable    string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:             ddb,
		projectsTable:   getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		servicesTable:   getenvDefault("PROJECT_SERVICES_TABLE", defaultProjectServicesTableName),
		additionalTable: getenvDefault("PROJECT_ADDITIONAL_SERVICES_TABLE", defaultProjectAdditionalTableName),
		activitiesTable: getenvDefault("PROJECT_ACTIVITIES_TABLE", defaultProjectActivitiesTableName),
		clientsTable:    getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ProjectDynamoRepository) CreateSubmission(ctx context.Context, rec interfaces.SubmissionRecord) error {
	projectAV, err := attributevalue.MarshalMap(toProjectItem(rec.Project))
	if err != nil {
		return err
	}

	// Item order matters: CancellationReasons come back index-aligned, and
	// mapTransactCancellation relies on the project put sitting at 0 and the
	// optional client put at 1.
	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.projectsTable),
			Item:                projectAV,
			ConditionExpression: aws.String("attribute_not_exists(#reference_id)"),
			ExpressionAttributeNames: map[string]string{
				"#reference_id": "reference_id",
			},
		},
	}}

	clientIdx := -1
	if rec.NewClient != nil {
		clientAV, err := attributevalue.MarshalMap(toClientItem(*rec.NewClient))
		if err != nil {
			return err
		}
		clientIdx = len(items)
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.clientsTable),
				Item:                clientAV,
				ConditionExpression: aws.String("attribute_not_exists(#email)"),
				ExpressionAttributeNames: map[string]string{
					"#email": "email",
				},
			},
		})
	}

	for _, svc := range rec.Services {
		av, err := attributevalue.MarshalMap(toProjectServiceItem(svc))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.servicesTable), Item: av},
		})
	}

	for _, add := range rec.AdditionalServices {
		av, err := attributevalue.MarshalMap(toProjectAdditionalServiceItem(add))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.additionalTable), Item: av},
		})
	}

	activityAV, err := attributevalue.MarshalMap(toProjectActivityItem(rec.Activity))
	if err != nil {
		return err
	}
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{TableName: aws.String(r.activitiesTable), Item: activityAV},
	})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return mapTransactCancellation(err, clientIdx)
	}
	return nil
}

func (r *ProjectDynamoRepository) GetByReferenceID(ctx context.Context, referenceID string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.projectsTable),
		Key: map[string]types.AttributeValue{
			"reference_id": &types.AttributeValueMemberS{Value: referenceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// mapTransactCancellation translates a conditional failure inside the
// transaction into the conflict the orchestrator can react to. Index 0 is
// always the project put (reference uniqueness), clientIdx the optional
// client put (email uniqueness).
func mapTransactCancellation(err error, clientIdx int) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != conditionalCheckFailedReason {
			continue
		}
		if i == 0 {
			return interfaces.ErrReferenceIDTaken
		}
		if i == clientIdx {
			return interfaces.ErrClientEmailTaken
		}
	}
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ReferenceID:      p.ReferenceID,
		ID:               p.ID,
		ClientID:         p.ClientID,
		ProjectName:      p.ProjectName,
		Description:      p.Description,
		ProjectType:      string(p.ProjectType),
		Timeline:         string(p.Timeline),
		TimelineModifier: p.TimelineModifier,
		EstimatedMin:     p.EstimatedMin,
		EstimatedMax:     p.EstimatedMax,
		BudgetRangeMin:   p.BudgetRangeMin,
		BudgetRangeMax:   p.BudgetRangeMax,
		AdditionalNotes:  p.AdditionalNotes,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Project{
		ID:               it.ID,
		ReferenceID:      it.ReferenceID,
		ClientID:         it.ClientID,
		ProjectName:      it.ProjectName,
		Description:      it.Description,
		ProjectType:      entities.ProjectType(it.ProjectType),
		Timeline:         entities.TimelineType(it.Timeline),
		TimelineModifier: it.TimelineModifier,
		EstimatedMin:     it.EstimatedMin,
		EstimatedMax:     it.EstimatedMax,
		BudgetRangeMin:   it.BudgetRangeMin,
		BudgetRangeMax:   it.BudgetRangeMax,
		AdditionalNotes:  it.AdditionalNotes,
		Status:           entities.ProjectStatus(it.Status),
		CreatedAt:        createdAt,
	}
}

func toProjectServiceItem(s entities.ProjectService) projectServiceItem {
	return projectServiceItem{
		ID:                 s.ID,
		ProjectID:          s.ProjectID,
		ServiceID:          s.ServiceID,
		ComplexityOptionID: s.ComplexityOptionID,
		SelectedMinPrice:   s.SelectedMinPrice,
		SelectedMaxPrice:   s.SelectedMaxPrice,
	}
}

func toProjectAdditionalServiceItem(s entities.ProjectAdditionalService) projectAdditionalServiceItem {
	return projectAdditionalServiceItem{
		ID:                  s.ID,
		ProjectID:           s.ProjectID,
		AdditionalServiceID: s.AdditionalServiceID,
		SelectedMinPrice:    s.SelectedMinPrice,
		SelectedMaxPrice:    s.SelectedMaxPrice,
	}
}

func toProjectActivityItem(a entities.ProjectActivity) projectActivityItem {
	return projectActivityItem{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		Type:        string(a.Type),
		Action:      a.Action,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
