// Command promote-admin grants the admin role custom claim to an existing
// identity. Run it once to bootstrap the first administrator:
//
//	go run ./cmd/promote-admin -uid <uid> -project <project-id>
package main

import (
	"context"
	"flag"
	"log"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/itsryu/ZeDoBambu/internal/system/constants"
)

func main() {
	uid := flag.String("uid", "", "uid of the identity to promote")
	project := flag.String("project", "", "Firebase project id")
	credentials := flag.String("credentials", "", "path to a service account key file (optional)")
	flag.Parse()

	if *uid == "" || *project == "" {
		log.Fatal("both -uid and -project are required")
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if *credentials != "" {
		opts = append(opts, option.WithCredentialsFile(*credentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: *project}, opts...)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("failed to initialize auth client: %v", err)
	}

	if _, err := authClient.GetUser(ctx, *uid); err != nil {
		log.Fatalf("failed to fetch identity %s: %v", *uid, err)
	}

	claims := map[string]interface{}{constants.RoleClaim: constants.RoleAdmin}
	if err := authClient.SetCustomUserClaims(ctx, *uid, claims); err != nil {
		log.Fatalf("failed to set admin claim: %v", err)
	}

	log.Printf("identity %s promoted to admin; the claim takes effect on the next token refresh", *uid)
}
