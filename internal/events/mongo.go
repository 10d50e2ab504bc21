package events

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore 基于 MongoDB 集合提供事件查询
// 集合结构与采集端写入保持一致：engine_off_events / collision_events
type MongoStore struct {
	client   *mongo.Client
	database string
}

// OpenMongo 连接 MongoDB 并验证连通性
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoStore{client: client, database: database}, nil
}

// Close 断开 MongoDB 连接
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EventsForVehicle 返回车辆在可选时间窗内的事件，按时间升序
func (s *MongoStore) EventsForVehicle(ctx context.Context, vehicleID string, start, end *time.Time) (*VehicleEvents, error) {
	filter := eventFilter(vehicleID, start, end)
	sort := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	result := &VehicleEvents{
		EngineOff:  []EngineOffEvent{},
		Collisions: []CollisionEvent{},
	}

	cursor, err := s.collection("engine_off_events").Find(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("query engine off events: %w", err)
	}
	if err := cursor.All(ctx, &result.EngineOff); err != nil {
		return nil, fmt.Errorf("decode engine off events: %w", err)
	}

	cursor, err = s.collection("collision_events").Find(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("query collision events: %w", err)
	}
	if err := cursor.All(ctx, &result.Collisions); err != nil {
		return nil, fmt.Errorf("decode collision events: %w", err)
	}

	return result, nil
}

// EventSummary 返回车辆的事件数量汇总
func (s *MongoStore) EventSummary(ctx context.Context, vehicleID string) (*EventSummary, error) {
	filter := bson.M{"vehicle_id": vehicleID}

	engineOffCount, err := s.collection("engine_off_events").CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count engine off events: %w", err)
	}

	collisionCount, err := s.collection("collision_events").CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count collision events: %w", err)
	}

	return &EventSummary{
		EngineOffCount: engineOffCount,
		CollisionCount: collisionCount,
	}, nil
}

func (s *MongoStore) collection(name string) *mongo.Collection {
	return s.client.Database(s.database).Collection(name)
}

func eventFilter(vehicleID string, start, end *time.Time) bson.M {
	filter := bson.M{"vehicle_id": vehicleID}

	window := bson.M{}
	if start != nil {
		window["$gte"] = *start
	}
	if end != nil {
		window["$lte"] = *end
	}
	if len(window) > 0 {
		filter["timestamp"] = window
	}

	return filter
}
