package controller

import (
	"fmt"
	"os"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/feed"
	"github.com/sporteventsagency-netizen/futbalito-sub001/live"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"github.com/sporteventsagency-netizen/futbalito-sub001/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	code := m.Run()
	testDB.Shutdown()
	os.Exit(code)
}

func newTestController(t *testing.T, clk clock.Clock, d db.DB, f feed.Client) (*controller, *live.Broker) {
	t.Helper()
	broker := live.NewBroker()
	ctrl, err := New(clk, d, f, broker, model.DefaultPortalConfig())
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl.(*controller), broker
}

func TestNew_requiresBroker(t *testing.T) {
	if _, err := New(clock.New(), nil, nil, nil, model.DefaultPortalConfig()); err == nil {
		t.Fatalf("error should not have been nil")
	}
}
