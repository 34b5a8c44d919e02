package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

const matchColumns = `m.id, m.competition_id, m.home_score, m.away_score, m.elapsed_sec,
						m.status, m.kickoff, m.stream_url, m.updated,
						h.id, h.competition_id, h.name, h.short_name, h.logo_url,
						a.id, a.competition_id, a.name, a.short_name, a.logo_url`

const matchJoins = `FROM matches m
						JOIN teams h ON h.id = m.home_team
						JOIN teams a ON a.id = m.away_team`

func (db *postgresDB) ListMatches(ctx context.Context, competitionID int32) ([]model.Match, error) {
	query := `SELECT ` + matchColumns + ` ` + matchJoins + `
				WHERE m.competition_id=@competitionID
				ORDER BY m.kickoff NULLS LAST, m.id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"competitionID": competitionID})
	if err != nil {
		return nil, fmt.Errorf("error listing matches: %w", err)
	}
	defer rows.Close()

	results := make([]model.Match, 0, 16)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning match: %w", err)
		}
		results = append(results, *m)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	query := `SELECT ` + matchColumns + ` ` + matchJoins + ` WHERE m.id=@id`

	m, err := scanMatch(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("error scanning match %d: %w", id, err)
	}

	m.Events, err = db.getMatchEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up events for match %d: %w", id, err)
	}
	return m, nil
}

func (db *postgresDB) AddMatch(ctx context.Context, m *model.Match) error {
	const query = `INSERT INTO matches (
		competition_id,
		home_team,
		away_team,
		home_score,
		away_score,
		elapsed_sec,
		status,
		kickoff,
		stream_url
	) VALUES (
		@competitionID,
		@homeTeam,
		@awayTeam,
		@homeScore,
		@awayScore,
		@elapsed,
		@status,
		@kickoff,
		@streamURL
	) RETURNING id`

	if m.Status == "" {
		m.Status = model.STATUS_SCHEDULED
	}
	args := pgx.NamedArgs{
		"competitionID": m.CompetitionID,
		"homeTeam":      m.HomeTeam.ID,
		"awayTeam":      m.AwayTeam.ID,
		"homeScore":     m.HomeScore,
		"awayScore":     m.AwayScore,
		"elapsed":       m.Elapsed,
		"status":        string(m.Status),
		"kickoff":       nullTimestamptz(m.Kickoff),
		"streamURL":     nullString(m.StreamURL),
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&m.ID); err != nil {
		return fmt.Errorf("error inserting match: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateMatchState(ctx context.Context, m *model.Match) error {
	const update = `UPDATE matches
		SET home_score=@homeScore,
			away_score=@awayScore,
			elapsed_sec=@elapsed,
			status=@status,
			stream_url=@streamURL,
			updated=@updated
		WHERE id=@id`

	now := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"id":        m.ID,
		"homeScore": m.HomeScore,
		"awayScore": m.AwayScore,
		"elapsed":   m.Elapsed,
		"status":    string(m.Status),
		"streamURL": nullString(m.StreamURL),
		"updated":   nullTimestamptz(now),
	}
	tag, err := db.pool.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error updating match %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMatchNotFound
	}
	m.Updated = now
	return nil
}

const insertMatchEvent = `INSERT INTO match_events (
		match_id,
		external_id,
		kind,
		minute,
		team_id,
		player_id,
		secondary_player_id,
		created
	) VALUES (
		@matchID,
		@externalID,
		@kind,
		@minute,
		@teamID,
		@playerID,
		@secondaryPlayerID,
		@created
	)
	ON CONFLICT (match_id, external_id) DO NOTHING
	RETURNING id`

// rowQuerier is satisfied by both the pool and a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (db *postgresDB) AddMatchEvent(ctx context.Context, e *model.MatchEvent) (bool, error) {
	return db.insertMatchEvent(ctx, db.pool, e)
}

func (db *postgresDB) AddGoal(ctx context.Context, e *model.MatchEvent) (bool, error) {
	const credit = `UPDATE matches
		SET home_score = home_score + CASE WHEN home_team=@teamID THEN 1 ELSE 0 END,
			away_score = away_score + CASE WHEN away_team=@teamID THEN 1 ELSE 0 END,
			updated=@updated
		WHERE id=@matchID AND (home_team=@teamID OR away_team=@teamID)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	added, err := db.insertMatchEvent(ctx, tx, e)
	if err != nil || !added {
		return false, err
	}

	args := pgx.NamedArgs{
		"matchID": e.MatchID,
		"teamID":  e.TeamID,
		"updated": nullTimestamptz(db.clock.Now().UTC()),
	}
	tag, err := tx.Exec(ctx, credit, args)
	if err != nil {
		return false, fmt.Errorf("error crediting goal to team %d in match %d: %w", e.TeamID, e.MatchID, err)
	}
	if tag.RowsAffected() == 0 {
		return false, ErrMatchNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("error committing goal for match %d: %w", e.MatchID, err)
	}
	return true, nil
}

func (db *postgresDB) insertMatchEvent(ctx context.Context, q rowQuerier, e *model.MatchEvent) (bool, error) {
	created := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"matchID":           e.MatchID,
		"externalID":        nullString(e.ExternalID),
		"kind":              string(e.Kind),
		"minute":            e.Minute,
		"teamID":            e.TeamID,
		"playerID":          playerRef(e.Player),
		"secondaryPlayerID": playerRef(e.SecondaryPlayer),
		"created":           nullTimestamptz(created),
	}

	if err := q.QueryRow(ctx, insertMatchEvent, args).Scan(&e.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already recorded
			return false, nil
		}
		return false, fmt.Errorf("error inserting %s event for match %d: %w", e.Kind, e.MatchID, err)
	}
	e.Created = created
	return true, nil
}

func (db *postgresDB) getMatchEvents(ctx context.Context, matchID int32) ([]model.MatchEvent, error) {
	const query = `SELECT e.id, e.external_id, e.match_id, e.kind, e.minute, e.team_id, e.created,
						p.id, p.team_id, p.name_first, p.name_last, p.shirt_number, p.position,
						s.id, s.team_id, s.name_first, s.name_last, s.shirt_number, s.position
					FROM match_events e
						LEFT JOIN players p ON p.id = e.player_id
						LEFT JOIN players s ON s.id = e.secondary_player_id
					WHERE e.match_id=@matchID
					ORDER BY e.id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"matchID": matchID})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.MatchEvent, 0, 16)
	for rows.Next() {
		var e model.MatchEvent
		var externalID, kind sql.NullString
		var created pgtype.Timestamptz
		var primary, secondary eventPlayer
		err := rows.Scan(
			&e.ID,
			&externalID,
			&e.MatchID,
			&kind,
			&e.Minute,
			&e.TeamID,
			&created,
			&primary.id, &primary.teamID, &primary.firstName, &primary.lastName, &primary.number, &primary.position,
			&secondary.id, &secondary.teamID, &secondary.firstName, &secondary.lastName, &secondary.number, &secondary.position)
		if err != nil {
			return nil, fmt.Errorf("error scanning match event: %w", err)
		}

		e.ExternalID = valueOrEmpty(externalID)
		e.Kind = model.ParseEventKind(kind.String)
		e.Created = created.Time
		e.Player = primary.toPlayer()
		e.SecondaryPlayer = secondary.toPlayer()
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanMatch(row pgx.Row) (*model.Match, error) {
	var result model.Match
	var status string
	var kickoff, updated pgtype.Timestamptz
	var streamURL sql.NullString
	var homeShort, homeLogo, awayShort, awayLogo sql.NullString
	err := row.Scan(
		&result.ID,
		&result.CompetitionID,
		&result.HomeScore,
		&result.AwayScore,
		&result.Elapsed,
		&status,
		&kickoff,
		&streamURL,
		&updated,
		&result.HomeTeam.ID,
		&result.HomeTeam.CompetitionID,
		&result.HomeTeam.Name,
		&homeShort,
		&homeLogo,
		&result.AwayTeam.ID,
		&result.AwayTeam.CompetitionID,
		&result.AwayTeam.Name,
		&awayShort,
		&awayLogo)
	if err != nil {
		return nil, err
	}

	result.Status = model.ParseMatchStatus(status)
	result.Kickoff = kickoff.Time
	result.StreamURL = valueOrEmpty(streamURL)
	result.Updated = updated.Time
	result.HomeTeam.ShortName = valueOrEmpty(homeShort)
	result.HomeTeam.LogoURL = valueOrEmpty(homeLogo)
	result.AwayTeam.ShortName = valueOrEmpty(awayShort)
	result.AwayTeam.LogoURL = valueOrEmpty(awayLogo)
	return &result, nil
}

// eventPlayer holds the columns of a player LEFT JOINed onto an event, any of
// which may be NULL.
type eventPlayer struct {
	id        pgtype.Int4
	teamID    pgtype.Int4
	firstName sql.NullString
	lastName  sql.NullString
	number    pgtype.Int4
	position  sql.NullString
}

func (p *eventPlayer) toPlayer() *model.Player {
	if !p.id.Valid {
		return nil
	}
	return &model.Player{
		ID:        p.id.Int32,
		TeamID:    p.teamID.Int32,
		FirstName: valueOrEmpty(p.firstName),
		LastName:  valueOrEmpty(p.lastName),
		Number:    int(p.number.Int32),
		Position:  model.ParsePosition(p.position.String),
	}
}

func playerRef(p *model.Player) pgtype.Int4 {
	if p == nil || p.ID == 0 {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: p.ID, Valid: true}
}
