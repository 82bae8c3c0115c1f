package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"vista_hostel/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the rooms table if it does not exist yet.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createRoomsSQL)
	return err
}

// UpsertRoom writes one catalog record. position is the room's index in the
// display order.
func (r *Repo) UpsertRoom(ctx context.Context, room domain.Room, position int) error {
	images, _ := json.Marshal(room.Images)
	amenities, _ := json.Marshal(room.Amenities)
	features, _ := json.Marshal(room.Features)
	details, _ := json.Marshal(room.Details)
	reviews, _ := json.Marshal(room.Reviews)

	var coords any
	if room.Coords != nil {
		b, _ := json.Marshal(room.Coords)
		coords = string(b)
	}

	_, err := r.db.ExecContext(ctx, upsertRoomSQL,
		room.ID,
		position,
		room.Name,
		room.Description,
		room.Location,
		room.Price,
		room.Capacity,
		room.Rating,
		room.Image,
		string(images),
		string(amenities),
		string(features),
		string(details),
		coords,
		string(reviews),
	)
	return err
}

func (r *Repo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	row := r.db.QueryRowContext(ctx, getRoomSQL, id)
	room, err := scanRoom(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	return room, err
}

func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func scanRoom(scan func(...any) error) (domain.Room, error) {
	var room domain.Room
	var description, location, image sql.NullString
	var images, amenities, features, details, coords, reviews []byte

	if err := scan(
		&room.ID,
		&room.Name,
		&description,
		&location,
		&room.Price,
		&room.Capacity,
		&room.Rating,
		&image,
		&images,
		&amenities,
		&features,
		&details,
		&coords,
		&reviews,
	); err != nil {
		return domain.Room{}, err
	}

	room.Description = description.String
	room.Location = location.String
	room.Image = image.String
	_ = json.Unmarshal(images, &room.Images)
	_ = json.Unmarshal(amenities, &room.Amenities)
	_ = json.Unmarshal(features, &room.Features)
	_ = json.Unmarshal(details, &room.Details)
	_ = json.Unmarshal(reviews, &room.Reviews)
	if len(coords) > 0 {
		var c domain.Coords
		if json.Unmarshal(coords, &c) == nil {
			room.Coords = &c
		}
	}
	return room, nil
}
