package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App wraps the Firebase clients used by the API
type App struct {
	AuthClient *auth.Client
}

// InitFirebase initializes the Firebase app used to verify Google
// sign-in ID tokens
func InitFirebase(ctx context.Context, credentialsPath string) (*App, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	return &App{AuthClient: authClient}, nil
}
