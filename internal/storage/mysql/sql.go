package mysql

// createRoomsSQL is executed by the seeder (and the integration tests) before
// the first upsert. position preserves the catalog's display order.
const createRoomsSQL = `
CREATE TABLE IF NOT EXISTS rooms (
  id          VARCHAR(64)  NOT NULL,
  position    INT          NOT NULL,
  name        VARCHAR(255) NOT NULL,
  description TEXT,
  location    VARCHAR(255),
  price       DOUBLE       NOT NULL,
  capacity    INT          NOT NULL,
  rating      DOUBLE       NOT NULL,
  image       TEXT,
  images      JSON,
  amenities   JSON,
  features    JSON,
  details     JSON,
  coords      JSON,
  reviews     JSON,
  updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  KEY idx_rooms_position (position)
)
`

const upsertRoomSQL = `
INSERT INTO rooms
  (id, position, name, description, location, price, capacity, rating, image, images, amenities, features, details, coords, reviews)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  position    = VALUES(position),
  name        = VALUES(name),
  description = VALUES(description),
  location    = VALUES(location),
  price       = VALUES(price),
  capacity    = VALUES(capacity),
  rating      = VALUES(rating),
  image       = VALUES(image),
  images      = VALUES(images),
  amenities   = VALUES(amenities),
  features    = VALUES(features),
  details     = VALUES(details),
  coords      = VALUES(coords),
  reviews     = VALUES(reviews),
  updated_at  = CURRENT_TIMESTAMP
`

const roomColumns = `
  id, name, description, location, price, capacity, rating, image,
  images, amenities, features, details, coords, reviews`

const getRoomSQL = `SELECT` + roomColumns + `
FROM rooms WHERE id = ?`

const listRoomsSQL = `SELECT` + roomColumns + `
FROM rooms ORDER BY position, id`
