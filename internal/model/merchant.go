package model

import "time"

// Merchant represents a business entity owned 1:1 by a user. Each
// merchant references exactly one user via UserID and a user owns at
// most one merchant (unique column). This struct corresponds to a row
// in the `merchants` table.
//
// Fields:
//  ID        - uuid primary key.
//  UserID    - users.id of the owning principal.
//  Name      - required display name.
//  Address   - optional street address.
//  Category  - optional free-text category (e.g. Restaurant, Retail).
//  Latitude  - optional geographic latitude.
//  Longitude - optional geographic longitude.
//  CreatedAt - timestamp when the row was created.
type Merchant struct {
	ID        string    // merchants.id
	UserID    string    // merchants.user_id
	Name      string    // merchants.name
	Address   *string   // merchants.address (nullable)
	Category  *string   // merchants.category (nullable)
	Latitude  *float64  // merchants.latitude (nullable)
	Longitude *float64  // merchants.longitude (nullable)
	CreatedAt time.Time // merchants.created_at
}
