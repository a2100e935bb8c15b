package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersClientIDIndex    = "client_id-index"

	// the id allocator lives in the orders table under this key
	orderCounterID = 0
)

type orderLineItem struct {
	DeviceID    int64  `dynamodbav:"device_id"`
	DeviceName  string `dynamodbav:"device_name"`
	Quantity    int    `dynamodbav:"quantity"`
	DataPerHour string `dynamodbav:"data_per_hour"`
}

type orderServiceItem struct {
	ID    int64  `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

type orderItem struct {
	ID            int64              `dynamodbav:"id"`
	Status        string             `dynamodbav:"status"`
	Address       string             `dynamodbav:"address"`
	TotalTraffic  string             `dynamodbav:"total_traffic"`
	ClientID      int64              `dynamodbav:"client_id"`
	ClientName    string             `dynamodbav:"client_name"`
	CreatedAt     string             `dynamodbav:"created_at"`
	FormedAt      string             `dynamodbav:"formed_at,omitempty"`
	CompletedAt   string             `dynamodbav:"completed_at,omitempty"`
	ModeratorID   *int64             `dynamodbav:"moderator_id,omitempty"`
	ModeratorName string             `dynamodbav:"moderator_name,omitempty"`
	Items         []orderLineItem    `dynamodbav:"items"`
	Services      []orderServiceItem `dynamodbav:"services,omitempty"`
}

// OrderDynamoRepository persists RemoteOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: client_id-index (PK: client_id)
//
// Item id 0 holds the id counter (attribute seq) and is never returned.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

// NextID atomically increments the counter item and returns the new value.
func (r *OrderDynamoRepository) NextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              orderKey(orderCounterID),
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("order counter: unexpected seq attribute %T", out.Attributes["seq"])
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// Put writes the whole order, replacing any stored version.
func (r *OrderDynamoRepository) Put(ctx context.Context, o entities.RemoteOrder) (entities.RemoteOrder, error) {
	if o.ID == orderCounterID {
		return entities.RemoteOrder{}, fmt.Errorf("order id %d is reserved", orderCounterID)
	}
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.RemoteOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.RemoteOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id int64) (entities.RemoteOrder, error) {
	if id == orderCounterID {
		return entities.RemoteOrder{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RemoteOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.RemoteOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RemoteOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByClientID(ctx context.Context, clientID int64) ([]entities.RemoteOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberN{Value: strconv.FormatInt(clientID, 10)},
		},
	})

	orders := []entities.RemoteOrder{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeOrders(page.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, decoded...)
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.RemoteOrder, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#id <> :counter"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":counter": &types.AttributeValueMemberN{Value: strconv.Itoa(orderCounterID)},
		},
	})

	orders := []entities.RemoteOrder{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeOrders(page.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, decoded...)
	}
	return orders, nil
}

func decodeOrders(raw []map[string]types.AttributeValue) ([]entities.RemoteOrder, error) {
	out := make([]entities.RemoteOrder, 0, len(raw))
	for _, av := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func orderKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func toOrderItem(o entities.RemoteOrder) orderItem {
	it := orderItem{
		ID:            o.ID,
		Status:        string(o.Status),
		Address:       o.Address,
		TotalTraffic:  floatToString(o.TotalTraffic),
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		CreatedAt:     formatTime(o.CreatedAt),
		FormedAt:      formatTimePtr(o.FormedAt),
		CompletedAt:   formatTimePtr(o.CompletedAt),
		ModeratorID:   o.ModeratorID,
		ModeratorName: o.ModeratorName,
		Items:         make([]orderLineItem, 0, len(o.Items)),
	}
	for _, li := range o.Items {
		it.Items = append(it.Items, orderLineItem{
			DeviceID:    li.DeviceID,
			DeviceName:  li.DeviceName,
			Quantity:    li.Quantity,
			DataPerHour: floatToString(li.DataPerHour),
		})
	}
	for _, s := range o.Services {
		it.Services = append(it.Services, orderServiceItem{ID: s.ID, Name: s.Name, Price: floatToString(s.Price)})
	}
	return it
}

func fromOrderItem(it orderItem) entities.RemoteOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	traffic, _ := strconv.ParseFloat(it.TotalTraffic, 64)
	o := entities.RemoteOrder{
		ID:            it.ID,
		Status:        entities.OrderStatus(it.Status),
		Address:       it.Address,
		TotalTraffic:  traffic,
		ClientID:      it.ClientID,
		ClientName:    it.ClientName,
		CreatedAt:     createdAt,
		FormedAt:      parseTimePtr(it.FormedAt),
		CompletedAt:   parseTimePtr(it.CompletedAt),
		ModeratorID:   it.ModeratorID,
		ModeratorName: it.ModeratorName,
		Items:         make([]entities.OrderItem, 0, len(it.Items)),
	}
	for _, li := range it.Items {
		rate, _ := strconv.ParseFloat(li.DataPerHour, 64)
		o.Items = append(o.Items, entities.OrderItem{
			DeviceID:    li.DeviceID,
			DeviceName:  li.DeviceName,
			Quantity:    li.Quantity,
			DataPerHour: rate,
		})
	}
	for _, s := range it.Services {
		price, _ := strconv.ParseFloat(s.Price, 64)
		o.Services = append(o.Services, entities.ServiceLine{ID: s.ID, Name: s.Name, Price: price})
	}
	return o
}
