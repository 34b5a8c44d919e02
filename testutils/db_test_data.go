package testutils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sporteventsagency-netizen/futbalito-sub001/containers"
	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

// The fixtures are inserted into a fresh database in this order, so their ids
// are stable: competition 1, teams 1 and 2, players 1 through 4, match 1 and
// articles 1 and 2. feeddata/live.json refers to these ids.
var (
	SuperLiga = &model.Competition{
		Name:   "SuperLiga",
		Season: "2024/25",
	}
	Dinamo = &model.Team{
		Name:      "Dinamo",
		ShortName: "DIN",
	}
	Rapid = &model.Team{
		Name:      "Rapid",
		ShortName: "RAP",
	}
	AndreiPopescu = &model.Player{
		FirstName: "Andrei",
		LastName:  "Popescu",
		Number:    9,
		Position:  model.POS_FW,
	}
	MihaiIonescu = &model.Player{
		FirstName: "Mihai",
		LastName:  "Ionescu",
		Number:    1,
		Position:  model.POS_GK,
	}
	VladStan = &model.Player{
		FirstName: "Vlad",
		LastName:  "Stan",
		Number:    8,
		Position:  model.POS_MF,
	}
	RaduMarin = &model.Player{
		FirstName: "Radu",
		LastName:  "Marin",
		Number:    11,
		Position:  model.POS_FW,
	}
	Derby = &model.Match{
		Status:    model.STATUS_LIVE,
		StreamURL: "https://youtu.be/liveDerby01",
	}
	DerbyPreview = &model.Article{
		Title:     "Derby preview",
		Summary:   "Everything you need to know before kickoff",
		Content:   "Both sides arrive unbeaten.",
		Author:    "Desk",
		Published: true,
	}
	DraftArticle = &model.Article{
		Title:   "Unfinished draft",
		Content: "TBD",
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container, err := containers.NewDBContainer(context.Background())
	if err != nil {
		log.Fatalf("error creating test container: %v", err)
	}
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		_ = container.Shutdown(context.Background())
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestData(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	if err := db.container.Shutdown(context.Background()); err != nil {
		log.Printf("error shutting down test db: %v", err)
	}
}

func InsertTestData(db db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.AddCompetition(ctx, SuperLiga); err != nil {
		return err
	}

	for _, t := range []*model.Team{Dinamo, Rapid} {
		t.CompetitionID = SuperLiga.ID
		if err := db.AddTeam(ctx, t); err != nil {
			return err
		}
	}

	AndreiPopescu.TeamID = Dinamo.ID
	MihaiIonescu.TeamID = Dinamo.ID
	VladStan.TeamID = Rapid.ID
	RaduMarin.TeamID = Rapid.ID
	for _, p := range []*model.Player{AndreiPopescu, MihaiIonescu, VladStan, RaduMarin} {
		if err := db.AddPlayer(ctx, p); err != nil {
			return err
		}
	}

	Derby.CompetitionID = SuperLiga.ID
	Derby.HomeTeam = *Dinamo
	Derby.AwayTeam = *Rapid
	if err := db.AddMatch(ctx, Derby); err != nil {
		return err
	}

	for _, a := range []*model.Article{DerbyPreview, DraftArticle} {
		a.CompetitionID = SuperLiga.ID
		if err := db.AddArticle(ctx, a); err != nil {
			return err
		}
	}

	if Derby.ID != 1 || RaduMarin.ID != 4 {
		return fmt.Errorf("unexpected fixture ids, match: %d, last player: %d", Derby.ID, RaduMarin.ID)
	}
	return nil
}
