// FILE: cmd/simple/main.go
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	logf "github.com/Falcom4000/logF"
)

func main() {
	fmt.Println("--- Simple Logger Example ---")

	logger, err := logf.NewBuilder().
		Directory("./simple_logs").
		Capacity(1024).
		FileSizeBytes(1 << 20).
		MinLevel(logf.LevelInfo).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	logger.Start()
	fmt.Println("Logger started.")

	logger.Info("main.go", 1, "Application starting...")
	logger.Warning("main.go", 2, "Potential issue detected, threshold=%", logf.Float(0.95))
	logger.Error("main.go", 3, "An error occurred, code=%", logf.Int(500))

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("main.go", 4, "Goroutine started, id=%", logf.Int(int64(id)))
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			logger.Info("main.go", 5, "Goroutine finished, id=%", logf.Int(int64(id)))
		}(i)
	}
	wg.Wait()
	fmt.Println("Goroutines finished.")

	fmt.Println("Shutting down logger...")
	written := logger.Stop()
	fmt.Printf("Logger shutdown complete, %d records written.\n", written)
	fmt.Println("Check log files in './simple_logs'.")
}
