package client

import (
	"context"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"cloud.google.com/go/firestore"
	"github.com/itsryu/ZeDoBambu/internal/system/config"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
	"google.golang.org/api/option"
)

// Clients bundles the Firebase Admin handles the application depends on.
// It is constructed once in main and passed down explicitly; there is no
// package-level singleton.
type Clients struct {
	Auth      *fbauth.Client
	Firestore *firestore.Client
}

// NewClients initializes the Firebase app and derives the Auth and
// Firestore clients from it.
func NewClients(ctx context.Context, cfg config.FirebaseConfig) (*Clients, error) {

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.CLIENT_INIT, err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.CLIENT_INIT, err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.CLIENT_INIT, err)
	}

	log.GetLogger().Info("Firebase clients initialized.", log.String("project_id", cfg.ProjectID))

	return &Clients{
		Auth:      authClient,
		Firestore: firestoreClient,
	}, nil
}

// Close releases the underlying Firestore connection.
func (c *Clients) Close() error {
	return c.Firestore.Close()
}
