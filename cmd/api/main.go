package main

import (
	"context"
	"cryptodashboard/cmd"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// best effort; env vars may come from the shell instead
	_ = godotenv.Load()

	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go apiHandler.RefreshService.Start(ctx)

	err = apiHandler.StartApi(8080)
	if err != nil {
		log.Fatal(err)
	}
}
