package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDevicesTableName = "devices"

type deviceItem struct {
	ID          int64  `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Model       string `dynamodbav:"model"`
	Description string `dynamodbav:"description"`
	Protocol    string `dynamodbav:"protocol"`
	DataPerHour string `dynamodbav:"data_per_hour"`
	IsActive    bool   `dynamodbav:"is_active"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// DeviceDynamoRepository stores the device catalog.
//
// Table requirements:
//   - PK: id (number)
//
// The catalog is small, so List scans and filters in process; DynamoDB
// contains() is case-sensitive and cannot serve the name search.

type DeviceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeviceRepository = (*DeviceDynamoRepository)(nil)

func NewDeviceDynamoRepository(ddb *dynamodb.Client) *DeviceDynamoRepository {
	return &DeviceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEVICES_TABLE", defaultDevicesTableName),
	}
}

func (r *DeviceDynamoRepository) List(ctx context.Context, filter entities.DeviceFilter) ([]entities.Device, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "is_active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})

	devices := []entities.Device{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it deviceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			d := fromDeviceItem(it)
			if matchesDeviceFilter(d, filter) {
				devices = append(devices, d)
			}
		}
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })
	return devices, nil
}

func (r *DeviceDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Device, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	})
	if err != nil {
		return entities.Device{}, err
	}
	if len(out.Item) == 0 {
		return entities.Device{}, nil
	}

	var it deviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Device{}, err
	}
	return fromDeviceItem(it), nil
}

func (r *DeviceDynamoRepository) Create(ctx context.Context, d entities.Device) (entities.Device, error) {
	av, err := attributevalue.MarshalMap(toDeviceItem(d))
	if err != nil {
		return entities.Device{}, err
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
		return entities.Device{}, err
	}
	return d, nil
}

// Update replaces the stored device. The write is conditional on the row
// existing so an update never resurrects a device removed in between.
func (r *DeviceDynamoRepository) Update(ctx context.Context, d entities.Device) (entities.Device, error) {
	av, err := attributevalue.MarshalMap(toDeviceItem(d))
	if err != nil {
		return entities.Device{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionFailed(err) {
		return entities.Device{}, nil
	}
	if err != nil {
		return entities.Device{}, err
	}
	return d, nil
}

// Deactivate flips is_active to false. Rows are never removed because
// submitted orders keep referencing them.
func (r *DeviceDynamoRepository) Deactivate(ctx context.Context, id int64) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		UpdateExpression:    aws.String("SET #active = :false"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#active": "is_active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if isConditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func matchesDeviceFilter(d entities.Device, f entities.DeviceFilter) bool {
	if !d.IsActive {
		return false
	}
	if f.Protocol != "" && !strings.EqualFold(d.Protocol, f.Protocol) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func toDeviceItem(d entities.Device) deviceItem {
	return deviceItem{
		ID:          d.ID,
		Name:        d.Name,
		Model:       d.Model,
		Description: d.Description,
		Protocol:    d.Protocol,
		DataPerHour: floatToString(d.DataPerHour),
		IsActive:    d.IsActive,
		CreatedAt:   formatTime(d.CreatedAt),
	}
}

func fromDeviceItem(it deviceItem) entities.Device {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	rate, _ := strconv.ParseFloat(it.DataPerHour, 64)
	return entities.Device{
		ID:          it.ID,
		Name:        it.Name,
		Model:       it.Model,
		Description: it.Description,
		Protocol:    it.Protocol,
		DataPerHour: rate,
		IsActive:    it.IsActive,
		CreatedAt:   createdAt,
	}
}
