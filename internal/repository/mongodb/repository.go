package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kressgarten/growops/internal/domain/models"
)

// Repository defines the interface for the local report store. Records here
// are the operation's own audit trail; the backend keeps the authoritative
// entities.
type Repository interface {
	SaveReadinessReport(ctx context.Context, report models.ReadinessReport) error
	SaveHarvestAudit(ctx context.Context, entry models.HarvestAuditEntry) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client        *mongo.Client
	dbName        string
	readinessColl string
	auditColl     string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:        client,
		dbName:        dbName,
		readinessColl: "readiness_reports",
		auditColl:     "harvest_audit",
	}, nil
}

// SaveReadinessReport saves one daily readiness snapshot.
func (r *MongoDBRepository) SaveReadinessReport(ctx context.Context, report models.ReadinessReport) error {
	collection := r.client.Database(r.dbName).Collection(r.readinessColl)
	if _, err := collection.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to insert readiness report: %w", err)
	}
	return nil
}

// SaveHarvestAudit saves one harvest submission with its variance verdict.
func (r *MongoDBRepository) SaveHarvestAudit(ctx context.Context, entry models.HarvestAuditEntry) error {
	collection := r.client.Database(r.dbName).Collection(r.auditColl)
	if _, err := collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert harvest audit entry: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
