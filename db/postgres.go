package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

var (
	ErrCompetitionNotFound error = errors.New("competition not found")
	ErrTeamNotFound        error = errors.New("team not found")
	ErrPlayerNotFound      error = errors.New("player not found")
	ErrMatchNotFound       error = errors.New("match not found")
	ErrArticleNotFound     error = errors.New("article not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) ListCompetitions(ctx context.Context) ([]model.Competition, error) {
	const query = `SELECT id, name, season, logo_url, description, created
					FROM competitions ORDER BY name, season DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing competitions: %w", err)
	}
	defer rows.Close()

	results := make([]model.Competition, 0, 8)
	for rows.Next() {
		c, err := scanCompetition(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning competition: %w", err)
		}
		results = append(results, *c)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetCompetition(ctx context.Context, id int32) (*model.Competition, error) {
	const query = `SELECT id, name, season, logo_url, description, created
					FROM competitions WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	c, err := scanCompetition(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("error scanning competition %d: %w", id, err)
	}
	return c, nil
}

func (db *postgresDB) AddCompetition(ctx context.Context, c *model.Competition) error {
	const query = `INSERT INTO competitions (name, season, logo_url, description)
					VALUES (@name, @season, @logoURL, @description)
					RETURNING id, created`

	args := pgx.NamedArgs{
		"name":        c.Name,
		"season":      c.Season,
		"logoURL":     nullString(c.LogoURL),
		"description": nullString(c.Description),
	}

	var created pgtype.Timestamptz
	if err := db.pool.QueryRow(ctx, query, args).Scan(&c.ID, &created); err != nil {
		return fmt.Errorf("error inserting competition %s: %w", c.Name, err)
	}
	c.Created = created.Time
	return nil
}

func scanCompetition(row pgx.Row) (*model.Competition, error) {
	var result model.Competition
	var logoURL, description sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Season,
		&logoURL,
		&description,
		&created)
	if err != nil {
		return nil, err
	}

	result.LogoURL = valueOrEmpty(logoURL)
	result.Description = valueOrEmpty(description)
	result.Created = created.Time
	return &result, nil
}

func (db *postgresDB) ListTeams(ctx context.Context, competitionID int32) ([]model.Team, error) {
	const query = `SELECT id, competition_id, name, short_name, logo_url
					FROM teams WHERE competition_id=@competitionID ORDER BY name`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"competitionID": competitionID})
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 20)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		results = append(results, *t)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	const query = `SELECT id, competition_id, name, short_name, logo_url FROM teams WHERE id=@id`

	t, err := scanTeam(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %d: %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) AddTeam(ctx context.Context, t *model.Team) error {
	const query = `INSERT INTO teams (competition_id, name, short_name, logo_url)
					VALUES (@competitionID, @name, @shortName, @logoURL)
					RETURNING id`

	args := pgx.NamedArgs{
		"competitionID": t.CompetitionID,
		"name":          t.Name,
		"shortName":     nullString(t.ShortName),
		"logoURL":       nullString(t.LogoURL),
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&t.ID); err != nil {
		return fmt.Errorf("error inserting team %s: %w", t.Name, err)
	}
	return nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	var shortName, logoURL sql.NullString
	if err := row.Scan(&result.ID, &result.CompetitionID, &result.Name, &shortName, &logoURL); err != nil {
		return nil, err
	}
	result.ShortName = valueOrEmpty(shortName)
	result.LogoURL = valueOrEmpty(logoURL)
	return &result, nil
}

func (db *postgresDB) ListPlayers(ctx context.Context, teamID int32) ([]model.Player, error) {
	const query = `SELECT id, team_id, name_first, name_last, shirt_number, position, created
					FROM players WHERE team_id=@teamID ORDER BY shirt_number, name_last`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"teamID": teamID})
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, 25)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning player: %w", err)
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	const query = `SELECT id, team_id, name_first, name_last, shirt_number, position, created
					FROM players WHERE id=@id`

	p, err := scanPlayer(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %d: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) AddPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (team_id, name_first, name_last, shirt_number, position)
					VALUES (@teamID, @nameFirst, @nameLast, @number, @position)
					RETURNING id, created`

	args := pgx.NamedArgs{
		"teamID":    p.TeamID,
		"nameFirst": nullString(p.FirstName),
		"nameLast":  p.LastName,
		"number":    p.Number,
		"position":  &DBPosition{position: p.Position},
	}

	var created pgtype.Timestamptz
	if err := db.pool.QueryRow(ctx, query, args).Scan(&p.ID, &created); err != nil {
		return fmt.Errorf("error inserting player %s: %w", p.FullName(), err)
	}
	p.Created = created.Time
	return nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var firstName sql.NullString
	var pos DBPosition
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.TeamID,
		&firstName,
		&result.LastName,
		&result.Number,
		&pos,
		&created)
	if err != nil {
		return nil, err
	}

	result.FirstName = valueOrEmpty(firstName)
	result.Position = pos.position
	result.Created = created.Time
	return &result, nil
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}

func nullTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             t,
		InfinityModifier: pgtype.Finite,
		Valid:            !t.IsZero(),
	}
}

type DBPosition struct {
	position model.Position
}

func (p *DBPosition) ScanText(v pgtype.Text) error {
	p.position = model.ParsePosition(v.String)
	return nil
}

func (p *DBPosition) TextValue() (pgtype.Text, error) {
	pos := p.position
	if pos == "" {
		pos = model.POS_UNKNOWN
	}
	return pgtype.Text{
		String: string(pos),
		Valid:  true,
	}, nil
}
