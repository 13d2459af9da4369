package cmd

import (
	"context"
	"fmt"

	"movie-reviews/internal/adaptor"
)

// ConsoleApp runs the interactive menu loop until the user quits or the
// context is cancelled.
func ConsoleApp(ctx context.Context, handler *adaptor.Handler) error {
	fmt.Println("=====================================")
	fmt.Println("  Welcome to the Movie Review System")
	fmt.Println("=====================================")

	return handler.Run(ctx)
}
