package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sayakroy83/Authentication-System/internal/infrastructure/database"
)

// Connectivity check for local MongoDB setup verification.
func main() {
	uri := "mongodb://localhost:27017"
	if envURI := os.Getenv("MONGODB_URI"); envURI != "" {
		uri = envURI
	}

	dbName := "Authentication"
	if envDB := os.Getenv("MONGODB_DATABASE"); envDB != "" {
		dbName = envDB
	}

	fmt.Println("MongoDB Connection Test")
	fmt.Println("=======================")
	fmt.Printf("Connecting to: %s\n", uri)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, uri)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer client.Disconnect(context.Background())
	fmt.Println("✓ Connection successful")

	db := client.Database(dbName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	fmt.Println("✓ Unique email index in place")

	count, err := db.Collection("users").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	fmt.Printf("✓ users collection reachable (%d documents)\n", count)
}
