package main

import (
	"os"

	"bariatric-gpt/backend/internal/app"
)

// @title           Bariatric GPT Backend API
// @version         1.0
// @description     Chat assistant backend for bariatric care: conversational pipeline, profile storage, and memory store.
// @BasePath        /api/v1
func main() {
	os.Exit(app.Run())
}
