package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/datasweeper/internal/app"
)

const shutdownTimeout = 15 * time.Second

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal

	// the shutdown budget starts at the signal, not at boot
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	application.Stop(ctx) // Stop the application gracefully
}
