package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

// Manual smoke run against a locally running server with real API keys.
func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Smoke Test...")

	fmt.Println("1. Health...")
	if !sendRequest("GET", "/health", nil) {
		fmt.Println("FAILED: Health")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health")

	fmt.Println("2. Structured Search...")
	searchPayload := map[string]interface{}{
		"industry":       "salon",
		"lat":            30.2672,
		"lng":            -97.7431,
		"limit":          5,
		"enable_scrape":  true,
		"enable_analyze": false,
	}
	if !sendRequest("POST", "/search", searchPayload) {
		fmt.Println("FAILED: Structured search")
		os.Exit(1)
	}
	fmt.Println("PASSED: Structured search")

	fmt.Println("3. Prompt Search...")
	promptPayload := map[string]interface{}{
		"prompt": "find 5 dentists that look like they have no real website",
		"lat":    30.2672,
		"lng":    -97.7431,
	}
	if !sendRequest("POST", "/search/prompt", promptPayload) {
		fmt.Println("SKIPPED/FAILED: Prompt search (requires an LLM provider)")
	} else {
		fmt.Println("PASSED: Prompt search")
	}

	fmt.Println("Smoke Test Complete.")
}

func sendRequest(method, path string, payload interface{}) bool {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("marshal error: %v\n", err)
			return false
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("request error: %v\n", err)
		return false
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("http error: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fmt.Printf("status %d: %s\n", resp.StatusCode, string(data))
		return false
	}
	if len(data) > 300 {
		data = data[:300]
	}
	fmt.Printf("response: %s...\n", string(data))
	return true
}
