package repository

import (
	"context"
	"errors"
	"strconv"

	"truga_booking/internal/domain/entities"
	"truga_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRoofBoxesTableName = "roof_boxes"

type roofBoxItem struct {
	ID          int    `dynamodbav:"id"`
	Slug        string `dynamodbav:"slug"`
	Title       string `dynamodbav:"title"`
	Size        string `dynamodbav:"size"`
	Capacity    string `dynamodbav:"capacity"`
	PricePerDay string `dynamodbav:"price_per_day"`
	Deposit     string `dynamodbav:"deposit"`
	Image       string `dynamodbav:"image"`
	Brand       string `dynamodbav:"brand"`
	IsPopular   bool   `dynamodbav:"is_popular"`
}

// RoofBoxDynamoRepository reads the roof box catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// The catalog is tiny (a handful of boxes), so slug lookups and listing use
// a Scan rather than a GSI.
type RoofBoxDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRoofBoxRepository = (*RoofBoxDynamoRepository)(nil)

func NewRoofBoxDynamoRepository(ddb *dynamodb.Client) *RoofBoxDynamoRepository {
	return &RoofBoxDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ROOF_BOXES_TABLE", defaultRoofBoxesTableName),
	}
}

func (r *RoofBoxDynamoRepository) GetByID(ctx context.Context, id int) (entities.RoofBox, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
	})
	if err != nil {
		return entities.RoofBox{}, err
	}
	if len(out.Item) == 0 {
		return entities.RoofBox{}, nil
	}

	var it roofBoxItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RoofBox{}, err
	}
	return fromRoofBoxItem(it), nil
}

func (r *RoofBoxDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.RoofBox, error) {
	boxes, err := r.List(ctx)
	if err != nil {
		return entities.RoofBox{}, err
	}
	for _, b := range boxes {
		if b.Slug == slug {
			return b, nil
		}
	}
	return entities.RoofBox{}, nil
}

func (r *RoofBoxDynamoRepository) List(ctx context.Context) ([]entities.RoofBox, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	boxes := make([]entities.RoofBox, 0, len(out.Items))
	for _, item := range out.Items {
		var it roofBoxItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		boxes = append(boxes, fromRoofBoxItem(it))
	}
	sortRoofBoxes(boxes)
	return boxes, nil
}

// Seed writes the embedded catalog into the table, skipping boxes that are
// already present. Used on startup so a local DynamoDB self-provisions.
func (r *RoofBoxDynamoRepository) Seed(ctx context.Context, boxes []entities.RoofBox) error {
	for _, b := range boxes {
		av, err := attributevalue.MarshalMap(toRoofBoxItem(b))
		if err != nil {
			return err
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
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return err
		}
	}
	return nil
}

func toRoofBoxItem(b entities.RoofBox) roofBoxItem {
	return roofBoxItem{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title,
		Size:        b.Size,
		Capacity:    b.Capacity,
		PricePerDay: floatToString(b.PricePerDay),
		Deposit:     floatToString(b.Deposit),
		Image:       b.Image,
		Brand:       b.Brand,
		IsPopular:   b.IsPopular,
	}
}

func fromRoofBoxItem(it roofBoxItem) entities.RoofBox {
	pricePerDay, _ := strconv.ParseFloat(it.PricePerDay, 64)
	deposit, _ := strconv.ParseFloat(it.Deposit, 64)
	return entities.RoofBox{
		ID:          it.ID,
		Slug:        it.Slug,
		Title:       it.Title,
		Size:        it.Size,
		Capacity:    it.Capacity,
		PricePerDay: pricePerDay,
		Deposit:     deposit,
		Image:       it.Image,
		Brand:       it.Brand,
		IsPopular:   it.IsPopular,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
