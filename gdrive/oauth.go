package gdrive

import (
	"context"
	"encoding/json"
	"fmt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"io/ioutil"
	"log"
)

// OAuth builds a read-only Google Drive client. This package only ever
// downloads byte ranges (@see NewDriveReaderAt), so the token is always
// requested with drive.DriveReadonlyScope and can never modify the drive.
//
// clientCredFile is the client_credentials.json from the Google Developers
// Console ("Credentials" section). tokenFile caches the user token: if the
// file is missing or unreadable, a new token is requested with user
// interaction and written there.
func OAuth(clientCredFile, tokenFile string) (*drive.Service, error) {
	// app credentials (client_credentials.json -> oauth2.Config)
	b, err := ioutil.ReadFile(clientCredFile)
	if err != nil {
		log.Printf("ERROR: %s/OAuth: %v", packageName, err)
		return nil, fmt.Errorf("gdrive/OAuth: %v", err)
	}
	conf, err := google.ConfigFromJSON(b, drive.DriveReadonlyScope)
	if err != nil {
		log.Printf("ERROR: %s/OAuth: %v", packageName, err)
		return nil, fmt.Errorf("gdrive/OAuth: %v", err)
	}

	// cached user token, or a fresh one with user interaction
	tok, err := loadToken(tokenFile)
	if err != nil {
		log.Printf("WARNING: %s/OAuth: %v", packageName, err)
		tok, err = requestToken(tokenFile, conf)
		if err != nil {
			return nil, err
		}
	}

	// drive service with the read-only token source
	ctx := context.Background()
	service, err := drive.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("gdrive/OAuth: %v", err)
	}

	return service, nil
}

//--------  HELPER  --------------------------------------------------------------------------------------------------//

// loadToken reads a cached oauth2 token from a file.
func loadToken(file string) (*oauth2.Token, error) {
	// read the entire file
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("gdrive/loadToken: %v", err)
	}

	// parse token
	tok := new(oauth2.Token)
	if err := json.Unmarshal(b, tok); err != nil {
		return nil, fmt.Errorf("gdrive/loadToken: %v", err)
	}

	// success
	return tok, nil
}

// requestToken asks the user for a new read-only token (user interaction)
// and caches it in the token file for the next OAuth call.
func requestToken(file string, conf *oauth2.Config) (*oauth2.Token, error) {
	// get authorization code from web (with user interaction)
	var authCode string
	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("\nFollow the link and authorize read-only drive access: %v\n\nEnter the authorization code here: ", authURL)
	_, _ = fmt.Scan(&authCode) // read user input

	// convert authorization code to token
	tok, err := conf.Exchange(context.TODO(), authCode)
	if err != nil {
		return nil, fmt.Errorf("gdrive/requestToken: %v", err)
	}

	// cache token
	b, err := json.Marshal(tok)
	if err != nil {
		return nil, fmt.Errorf("gdrive/requestToken: %v", err)
	}
	if err := ioutil.WriteFile(file, b, 0600); err != nil {
		return nil, fmt.Errorf("gdrive/requestToken: %v", err)
	}

	// success
	return tok, nil
}
