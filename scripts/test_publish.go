// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PlacesImportJob struct {
	JobID        uuid.UUID `json:"job_id"`
	SiteID       uuid.UUID `json:"site_id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CityID       uuid.UUID `json:"city_id"`
	CityName     string    `json:"city_name"`
	StateCode    string    `json:"state_code"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	siteID := flag.String("site", "", "Site id to import for (required)")
	categoryID := flag.String("category", "", "Category id (required)")
	categoryName := flag.String("category-name", "Family Law", "Category display name")
	cityID := flag.String("city", "", "City id (required)")
	cityName := flag.String("city-name", "Tampa", "City display name")
	stateCode := flag.String("state", "FL", "Two-letter state code")
	flag.Parse()

	if *siteID == "" || *categoryID == "" || *cityID == "" {
		log.Fatal("-site, -category and -city are required")
	}

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	job := PlacesImportJob{
		JobID:        uuid.New(),
		SiteID:       uuid.MustParse(*siteID),
		CategoryID:   uuid.MustParse(*categoryID),
		CategoryName: *categoryName,
		CityID:       uuid.MustParse(*cityID),
		CityName:     *cityName,
		StateCode:    *stateCode,
	}

	data, err := json.Marshal(job)
	if err != nil {
		log.Fatalf("Failed to marshal job: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:places:import",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish job: %v", err)
	}

	fmt.Printf("Job published\n")
	fmt.Printf("   Stream: stream:places:import\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Job ID: %s\n", job.JobID)
	fmt.Printf("   Query: %s in %s, %s\n", job.CategoryName, job.CityName, job.StateCode)

	fmt.Printf("\nWaiting for result in stream:places:done...\n")

	timeout := time.After(60 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for result")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:places:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if jobID, ok := response["job_id"].(string); ok {
						if jobID == job.JobID.String() {
							fmt.Printf("\nResult received\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
