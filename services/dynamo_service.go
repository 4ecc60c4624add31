package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roommate_server/logging"
	"roommate_server/models"
	"roommate_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by DynamoService
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoService stores profiles and logins in two DynamoDB tables whose
// partition key is "email".
type DynamoService struct {
	Client        DynamoAPI
	ProfilesTable string
	LoginsTable   string
}

const (
	attrEmail       = "email"
	attrFavourites  = "favouriteRoommates"
	attrRecommended = "recommendedRoommates"
)

// InitializeDynamoDBClient initializes the DynamoDB client. A non-empty
// endpoint points the client at DynamoDB Local or another compatible service.
func InitializeDynamoDBClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func emailKey(email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrEmail: &types.AttributeValueMemberS{Value: email},
	}
}

// GetItem retrieves an item, returning nil when the key does not exist
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue, projection *string, names map[string]string) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(tableName),
		Key:                      key,
		ProjectionExpression:     projection,
		ExpressionAttributeNames: names,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}
	return output.Item, nil
}

// PutItem marshals item and writes it, replacing any item with the same key
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// FindProfile implements ProfileStore
func (ds *DynamoService) FindProfile(ctx context.Context, email string) (*models.ProfileRecord, error) {
	item, err := ds.GetItem(ctx, ds.ProfilesTable, emailKey(email), nil, nil)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return decodeProfileItem(item)
}

func decodeProfileItem(item map[string]types.AttributeValue) (*models.ProfileRecord, error) {
	var profile models.ProfileRecord
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %q: %w", utils.ExtractString(item, attrEmail), err)
	}
	profile.RecommendedRoommates, profile.Recommendations = utils.ExtractStringList(item, attrRecommended)
	return &profile, nil
}

// ListProfilesExcluding implements ProfileStore with a paginated Scan
func (ds *DynamoService) ListProfilesExcluding(ctx context.Context, emails []string) ([]models.ProfileRecord, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(ds.ProfilesTable)}

	if len(emails) > 0 {
		placeholders := make([]string, 0, len(emails))
		values := make(map[string]types.AttributeValue, len(emails))
		for i, email := range emails {
			ph := fmt.Sprintf(":e%d", i)
			placeholders = append(placeholders, ph)
			values[ph] = &types.AttributeValueMemberS{Value: email}
		}
		input.FilterExpression = aws.String(fmt.Sprintf("NOT (#email IN (%s))", strings.Join(placeholders, ", ")))
		input.ExpressionAttributeNames = map[string]string{"#email": attrEmail}
		input.ExpressionAttributeValues = values
	}

	profiles := []models.ProfileRecord{}
	paginator := dynamodb.NewScanPaginator(ds.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", ds.ProfilesTable, err)
		}
		for _, item := range page.Items {
			profile, err := decodeProfileItem(item)
			if err != nil {
				logging.Ctx(ctx).Warn().Err(err).Str("table", ds.ProfilesTable).Msg("skipping undecodable profile")
				continue
			}
			profiles = append(profiles, *profile)
		}
	}
	return profiles, nil
}

// AddFavourite implements ProfileStore. ADD on a string set is atomic and
// creates the item when the key does not exist yet.
func (ds *DynamoService) AddFavourite(ctx context.Context, userEmail, favEmail string) error {
	_, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(ds.ProfilesTable),
		Key:                       emailKey(userEmail),
		UpdateExpression:          aws.String("ADD #favs :fav"),
		ExpressionAttributeNames:  map[string]string{"#favs": attrFavourites},
		ExpressionAttributeValues: map[string]types.AttributeValue{":fav": &types.AttributeValueMemberSS{Value: []string{favEmail}}},
	})
	if err != nil {
		return fmt.Errorf("failed to add favourite in table '%s': %w", ds.ProfilesTable, err)
	}
	return nil
}

// RemoveFavourite implements ProfileStore. The condition keeps DELETE from
// creating an empty item for an unknown user.
func (ds *DynamoService) RemoveFavourite(ctx context.Context, userEmail, favEmail string) error {
	_, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(ds.ProfilesTable),
		Key:                 emailKey(userEmail),
		UpdateExpression:    aws.String("DELETE #favs :fav"),
		ConditionExpression: aws.String("attribute_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#favs":  attrFavourites,
			"#email": attrEmail,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{":fav": &types.AttributeValueMemberSS{Value: []string{favEmail}}},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return models.ErrNoDocument
		}
		return fmt.Errorf("failed to remove favourite in table '%s': %w", ds.ProfilesTable, err)
	}
	return nil
}

// FindLogin implements LoginStore
func (ds *DynamoService) FindLogin(ctx context.Context, email string) (*models.LoginRecord, error) {
	item, err := ds.GetItem(ctx, ds.LoginsTable, emailKey(email), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeLoginItem(item)
}

// FindLoginContact implements LoginStore. "name" is a DynamoDB reserved word,
// hence the placeholders.
func (ds *DynamoService) FindLoginContact(ctx context.Context, email string) (*models.LoginRecord, error) {
	item, err := ds.GetItem(ctx, ds.LoginsTable, emailKey(email),
		aws.String("#email, #name, #gender, #phone"),
		map[string]string{"#email": attrEmail, "#name": "name", "#gender": "gender", "#phone": "phone"},
	)
	if err != nil {
		return nil, err
	}
	return decodeLoginItem(item)
}

func decodeLoginItem(item map[string]types.AttributeValue) (*models.LoginRecord, error) {
	if item == nil {
		return nil, nil
	}
	var login models.LoginRecord
	if err := attributevalue.UnmarshalMap(item, &login); err != nil {
		return nil, fmt.Errorf("failed to unmarshal login %q: %w", utils.ExtractString(item, attrEmail), err)
	}
	return &login, nil
}

// InsertLogin implements LoginStore. PutItem replaces a login with the same
// email, so registering twice succeeds both times.
func (ds *DynamoService) InsertLogin(ctx context.Context, login models.LoginRecord) error {
	logging.Ctx(ctx).Debug().Str("table", ds.LoginsTable).Str("email", login.Email).Msg("inserting login")
	return ds.PutItem(ctx, ds.LoginsTable, login)
}
