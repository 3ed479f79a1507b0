package connection

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/config"
)

// FBConnection initializes the Firebase app and returns a Firestore
// client using the configured service account key.
func FBConnection(cfg *config.Configuration) (*firestore.Client, error) {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting firestore client: %w", err)
	}
	return client, nil
}
