// contacts-smoke exercises every endpoint of a running instance and prints
// a pass/fail summary. Intended for manual checks against dev deployments:
//
//	BASE_URL=http://localhost:8080 go run ./cmd/contacts-smoke
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

var baseURL = getEnv("BASE_URL", "http://localhost:8080")

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total   int  `json:"total"`
		Limit   int  `json:"limit"`
		Offset  int  `json:"offset"`
		HasMore bool `json:"hasMore"`
	} `json:"pagination"`
	Error string `json:"error"`
}

func main() {
	fmt.Println("==========================================")
	fmt.Println("Contact Directory API smoke test")
	fmt.Println("==========================================")
	fmt.Printf("Base URL: %s\n\n", baseURL)

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")

	failures := 0
	failures += check(client, "health", "/api/health", false)
	failures += check(client, "contact list", "/api/contacts?limit=5", true)
	failures += check(client, "filtered list", "/api/contacts?search=a&limit=5", true)
	failures += check(client, "locations", "/api/locations", false)
	failures += check(client, "provinces", "/api/provinces", false)
	failures += check(client, "states", "/api/states", false)
	failures += checkStatus(client, "non-numeric id", "/api/contacts/abc", 400)
	failures += checkStatus(client, "unknown route", "/api/nope", 404)

	fmt.Println("==========================================")
	if failures > 0 {
		fmt.Printf("%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}

func check(client *resty.Client, name, path string, wantPagination bool) int {
	fmt.Printf("-- %s: GET %s\n", name, path)
	var body envelope
	resp, err := client.R().SetResult(&body).Get(path)
	if err != nil {
		fmt.Printf("   request failed: %v\n", err)
		return 1
	}
	fmt.Printf("   status: %d\n", resp.StatusCode())
	if resp.StatusCode() != 200 {
		fmt.Printf("   body: %s\n", resp.String())
		return 1
	}
	if wantPagination {
		if body.Pagination == nil {
			fmt.Println("   missing pagination block")
			return 1
		}
		fmt.Printf("   total=%d hasMore=%v\n", body.Pagination.Total, body.Pagination.HasMore)
	}
	return 0
}

func checkStatus(client *resty.Client, name, path string, want int) int {
	fmt.Printf("-- %s: GET %s\n", name, path)
	resp, err := client.R().Get(path)
	if err != nil {
		fmt.Printf("   request failed: %v\n", err)
		return 1
	}
	fmt.Printf("   status: %d (want %d)\n", resp.StatusCode(), want)
	if resp.StatusCode() != want {
		return 1
	}
	return 0
}
