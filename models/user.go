package models

import "time"

// User roles.
const (
	RoleStudent  = "student"
	RoleEducator = "educator"
)

// User is the minimal identity surface the scheduling core needs: enough to
// resolve booking parties and address confirmation emails. Account
// management itself lives elsewhere.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
