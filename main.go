package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/sporteventsagency-netizen/futbalito-sub001/config"
	"github.com/sporteventsagency-netizen/futbalito-sub001/controller"
	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/feed"
	"github.com/sporteventsagency-netizen/futbalito-sub001/live"
	"github.com/sporteventsagency-netizen/futbalito-sub001/web"
	"golang.org/x/oauth2/clientcredentials"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	syncInterval := 30 * time.Second
	if v := os.Getenv("FEED_SYNC_INTERVAL"); v != "" {
		syncInterval, err = time.ParseDuration(v)
		if err != nil {
			log.Fatalf("error parsing feed sync interval: %v", err)
		}
	}

	portal, err := config.LoadPortalConfig(os.Getenv("PORTAL_CONFIG"))
	if err != nil {
		log.Fatalf("%v", err)
	}

	admins := map[string]string{}
	if user, password := os.Getenv("ADMIN_USER"), os.Getenv("ADMIN_PASSWORD"); user != "" && password != "" {
		admins[user] = password
	} else {
		log.Printf("ADMIN_USER or ADMIN_PASSWORD not set, admin routes are disabled")
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	feedClient, err := newFeedClient()
	if err != nil {
		log.Fatalf("error creating feed client: %v", err)
	}

	ctrl, err := controller.New(clock, db, feedClient, live.NewBroker(), portal)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, clock, admins)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Keep live matches in step with the feed
	if feedClient != nil {
		wg.Add(1)
		go ctrl.RunPeriodicMatchSync(syncInterval, shutdown, wg)
	}

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// newFeedClient returns nil when no feed is configured, matches are then only
// updated through the admin routes.
func newFeedClient() (feed.Client, error) {
	url := os.Getenv("FEED_URL")
	if url == "" {
		log.Printf("FEED_URL not set, live match sync is disabled")
		return nil, nil
	}

	var creds *clientcredentials.Config
	clientID := os.Getenv("FEED_CLIENT_ID")
	clientSecret := os.Getenv("FEED_CLIENT_SECRET")
	tokenURL := os.Getenv("FEED_TOKEN_URL")
	if clientID != "" && clientSecret != "" && tokenURL != "" {
		creds = &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}
	}
	return feed.New(url, creds)
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
