package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

// dynamoSessionAPI is the subset of *dynamodb.Client the session store uses.
type dynamoSessionAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	UpdateTimeToLive(ctx context.Context, in *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error)
}

type sessionItem struct {
	ID        string            `dynamodbav:"id"`
	Values    map[string]string `dynamodbav:"values,omitempty"`
	ExpiresAt int64             `dynamodbav:"expires_at"`
}

// SessionDynamoRepository persists sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so Get also checks expires_at.
type SessionDynamoRepository struct {
	ddb       dynamoSessionAPI
	tableName string
	now       func() time.Time
}

var (
	_ interfaces.ISessionRepository  = (*SessionDynamoRepository)(nil)
	_ interfaces.ISchemaBootstrapper = (*SessionDynamoRepository)(nil)
)

func NewSessionDynamoRepository(ddb dynamoSessionAPI, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("SESSIONS_TABLE", defaultSessionsTableName)
	}
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

// Bootstrap creates the sessions table with TTL enabled when it is missing.
func (r *SessionDynamoRepository) Bootstrap(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return err
	}

	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(r.tableName),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String("expires_at"),
			Enabled:       aws.Bool(true),
		},
	})
	return err
}

func (r *SessionDynamoRepository) Get(ctx context.Context, id string) (entities.Session, error) {
	if id == "" {
		return entities.Session{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	s := fromSessionItem(it)
	if s.Expired(r.now()) {
		return entities.Session{}, nil
	}
	return s, nil
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) error {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	it := sessionItem{ID: s.ID, Values: s.Values}
	if !s.ExpiresAt.IsZero() {
		it.ExpiresAt = s.ExpiresAt.Unix()
	}
	return it
}

func fromSessionItem(it sessionItem) entities.Session {
	s := entities.Session{ID: it.ID, Values: it.Values}
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	if it.ExpiresAt > 0 {
		s.ExpiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	return s
}
