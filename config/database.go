package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "cronoapp-db"

const (
	UserCollection           = "users"
	ShiftCollection          = "shifts"
	AbsenceCollection        = "absences"
	ObjectiveCollection      = "objectives"
	LaborAgreementCollection = "labor_agreements"
	AuditEventCollection     = "audit_events"
)

// MongoConnect dials the cluster and returns the client. The client is
// passed down explicitly; repositories receive the database handle in their
// constructors instead of reaching for a package global.
func MongoConnect(mongoURI string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB")
	return client, nil
}

func Database(client *mongo.Client) *mongo.Database {
	return client.Database(DBName)
}

func DisconnectDB(client *mongo.Client) {
	if client != nil {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}
}
